package service

import (
	"context"
	"time"

	"github.com/iliyamo/course-enrollment/internal/apperr"
	"github.com/iliyamo/course-enrollment/internal/model"
	"github.com/iliyamo/course-enrollment/internal/utils"
)

// APIKeyService implements API key issuance, listing and revocation.
type APIKeyService struct {
	Keys  APIKeyStore
	Users UserStore
	now   func() time.Time
}

func NewAPIKeyService(keys APIKeyStore, users UserStore) *APIKeyService {
	return &APIKeyService{Keys: keys, Users: users, now: time.Now}
}

// Create issues a new API key for an existing user.  It returns the
// stored record together with the plaintext secret; this is the only
// moment the secret is observable.  Only the SHA-256 digest is
// persisted, so the secret cannot be retrieved again.
func (s *APIKeyService) Create(ctx context.Context, keyName string, createdBy uint64) (*model.APIKey, string, error) {
	creator, err := s.Users.ByID(ctx, createdBy)
	if err != nil {
		return nil, "", err
	}
	if creator == nil {
		return nil, "", apperr.NotFound("user", createdBy)
	}
	secret, err := utils.NewAPIKeySecret()
	if err != nil {
		return nil, "", err
	}
	k := &model.APIKey{
		KeyName:   keyName,
		KeyHash:   utils.HashAPIKeySecret(secret),
		CreatedBy: createdBy,
		Status:    model.APIKeyActive,
	}
	if err := s.Keys.Insert(ctx, k); err != nil {
		return nil, "", err
	}
	return k, secret, nil
}

// List returns every key, active and revoked, newest first.  The
// stored hash is part of the listing.
func (s *APIKeyService) List(ctx context.Context) ([]model.APIKey, error) {
	return s.Keys.All(ctx)
}

// Revoke transitions a key from active to revoked exactly once.
// Unlike course archival, revocation is not idempotent: revoking a
// revoked key is a conflict.
func (s *APIKeyService) Revoke(ctx context.Context, id uint64) (*model.APIKey, error) {
	k, err := s.Keys.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, apperr.NotFound("api_key", id)
	}
	if k.Status == model.APIKeyRevoked {
		return nil, apperr.Conflict("api_key", "already revoked")
	}
	revoked, err := s.Keys.MarkRevoked(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if revoked == nil {
		return nil, apperr.NotFound("api_key", id)
	}
	return revoked, nil
}
