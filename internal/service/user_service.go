package service

import (
	"context"
	"errors"

	"github.com/iliyamo/course-enrollment/internal/apperr"
	"github.com/iliyamo/course-enrollment/internal/model"
	"github.com/iliyamo/course-enrollment/internal/repository"
	"github.com/iliyamo/course-enrollment/internal/utils"
)

// CreateUserInput carries the fields of a registration request.  The
// handler layer validates shape (email format, password length, name
// presence) before this input reaches the service.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UserService implements the user operations: create, login lookup,
// get by id and list.
type UserService struct {
	Users      UserStore
	BcryptCost int
}

func NewUserService(users UserStore, bcryptCost int) *UserService {
	return &UserService{Users: users, BcryptCost: bcryptCost}
}

// Create registers a new user.  The plaintext password is transformed
// into a bcrypt credential before it touches the store and is never
// logged.  An already-taken email yields a conflict.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	role := in.Role
	if role == "" {
		role = model.RoleStudent
	}
	hash, err := utils.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
	}
	if err := s.Users.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, apperr.Conflict("user", "email already exists")
		}
		return nil, err
	}
	return u, nil
}

// Authenticate verifies an email/password pair and returns the user
// record.  Unknown email and wrong password produce the exact same
// failure so a caller cannot probe which emails are registered.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.AuthenticationFailed()
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, apperr.AuthenticationFailed()
	}
	return u, nil
}

// ByID returns the user with the given id, or nil when no such user
// exists.  Absence is not an error here.
func (s *UserService) ByID(ctx context.Context, id uint64) (*model.User, error) {
	return s.Users.ByID(ctx, id)
}

// List returns all users in creation order.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.Users.All(ctx)
}
