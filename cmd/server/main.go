package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-enrollment/internal/config"
	"github.com/iliyamo/course-enrollment/internal/database"
	"github.com/iliyamo/course-enrollment/internal/handler"
	"github.com/iliyamo/course-enrollment/internal/middleware"
	"github.com/iliyamo/course-enrollment/internal/queue"
	"github.com/iliyamo/course-enrollment/internal/repository"
	"github.com/iliyamo/course-enrollment/internal/router"
	"github.com/iliyamo/course-enrollment/internal/service"
	"github.com/iliyamo/course-enrollment/internal/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the rate limiter only; nil means the limiter runs
	// as a pass-through and the API stays available.
	rdb := config.NewRedisClient()

	// Repositories.
	users := repository.NewUserRepo(db)
	courses := repository.NewCourseRepo(db)
	enrollments := repository.NewEnrollmentRepo(db)
	apiKeys := repository.NewAPIKeyRepo(db)

	// Services.
	userSvc := service.NewUserService(users, cfg.BcryptCost)
	courseSvc := service.NewCourseService(courses, users)
	enrollSvc := service.NewEnrollmentService(enrollments, users, courses, queue.NewPublisher())
	apiKeySvc := service.NewAPIKeyService(apiKeys, users)

	h := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, userSvc),
		Users:       handler.NewUserHandler(userSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollSvc),
		APIKeys:     handler.NewAPIKeyHandler(apiKeySvc),
	}

	e := echo.New()
	e.Validator = validation.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, h)
	router.RegisterProtected(e, h, cfg.JWTSecret)

	// Background consumer mirrors enrollment events into a local audit
	// log.  It reconnects on its own and never takes the API down.
	go func() {
		if err := queue.StartEnrollmentConsumer(); err != nil {
			log.Printf("enrollment consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
