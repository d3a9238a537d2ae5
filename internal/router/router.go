package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-enrollment/internal/handler"
	"github.com/iliyamo/course-enrollment/internal/middleware"
	"github.com/iliyamo/course-enrollment/internal/model"
)

// Handlers bundles every handler the router needs.  main constructs
// it once and hands it over.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Courses     *handler.CourseHandler
	Enrollments *handler.EnrollmentHandler
	APIKeys     *handler.APIKeyHandler
}

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance: the health check, the auth entry
// points and the public course catalog.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	// Load balancers and monitoring probe this one.
	e.GET("/healthz", handler.Health)

	// Session entry points: no token required.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Public catalog.  Listing shows published courses only; fetching
	// a single course by id is open regardless of status.
	e.GET("/v1/courses", h.Courses.ListPublished)
	e.GET("/v1/courses/:id", h.Courses.GetByID)
}

// RegisterProtected registers all routes that require a valid access
// token.  Inside the authenticated group, role middleware gates the
// mutation and admin surfaces:
//
//   - any authenticated user: user lookup, enrollments, instructor
//     course listing, /me
//   - instructor or admin:    course create/update/delete
//   - admin only:             user listing, API key management
func RegisterProtected(e *echo.Echo, h Handlers, jwtSecret string) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))

	v1.GET("/me", h.Auth.Me)
	v1.GET("/users/:id", h.Users.GetByID)
	v1.POST("/enrollments", h.Enrollments.Create)
	v1.GET("/students/:id/enrollments", h.Enrollments.ByStudent)
	v1.GET("/instructors/:id/courses", h.Courses.ListByInstructor)

	teach := v1.Group("")
	teach.Use(middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))
	teach.POST("/courses", h.Courses.Create)
	teach.PATCH("/courses/:id", h.Courses.Update)
	teach.DELETE("/courses/:id", h.Courses.Delete)

	admin := v1.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/users", h.Users.List)
	admin.POST("/api-keys", h.APIKeys.Create)
	admin.GET("/api-keys", h.APIKeys.List)
	admin.POST("/api-keys/:id/revoke", h.APIKeys.Revoke)
}
