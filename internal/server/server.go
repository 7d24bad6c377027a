// Package server wires the HTTP layer: routing, middleware, and handlers.
package server

import (
	"context"
	"sync"
	"time"

	"threadapp/internal/auth"
	"threadapp/internal/cache"
	"threadapp/internal/config"
	"threadapp/internal/middleware"
	"threadapp/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds the Fiber app and the services handlers depend on.
type Server struct {
	App    *fiber.App
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client

	tokenIssuer *auth.TokenIssuer

	authService         *service.AuthService
	threadService       *service.ThreadService
	commentService      *service.CommentService
	likeService         *service.LikeService
	followService       *service.FollowService
	notificationService *service.NotificationService
	userService         *service.UserService
}

// NewServer creates the server with all services wired. redisClient may be
// nil; caching then degrades to pass-through.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	store := cache.NewStore(redisClient)

	s := &Server{
		App: fiber.New(fiber.Config{
			AppName:      "threadapp",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}),
		Config:              cfg,
		DB:                  db,
		Redis:               redisClient,
		tokenIssuer:         issuer,
		authService:         service.NewAuthService(db, auth.NewPasswordHasher()),
		threadService:       service.NewThreadService(db),
		commentService:      service.NewCommentService(db),
		likeService:         service.NewLikeService(db),
		followService:       service.NewFollowService(db),
		notificationService: service.NewNotificationService(db),
		userService:         service.NewUserService(db, store),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.App.Use(recover.New())
	s.App.Use(requestid.New())
	s.App.Use(helmet.New())
	s.App.Use(middleware.StructuredLogger())
	s.App.Use(cors.New(cors.Config{
		AllowOrigins: s.Config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	// Collector registration is process-global; guard it so constructing more
	// than one Server does not re-register.
	promOnce.Do(func() {
		prom = fiberprometheus.New("threadapp")
	})
	prom.RegisterAt(s.App, "/metrics")
	s.App.Use(prom.Middleware)
}

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

func (s *Server) setupRoutes() {
	s.App.Get("/", s.HealthCheck)

	authGroup := s.App.Group("/auth")
	authGroup.Post("/register", s.Register)
	authGroup.Post("/login", s.Login)

	protected := middleware.AuthRequired(s.tokenIssuer)

	threads := s.App.Group("/threads")
	threads.Get("/", s.ListThreads)
	threads.Get("/:id", s.GetThread)
	threads.Post("/", protected, s.CreateThread)
	threads.Delete("/:id", protected, s.DeleteThread)
	threads.Get("/:id/comments", s.ListComments)
	threads.Post("/:id/comments", protected, s.CreateComment)

	likes := s.App.Group("/likes", protected)
	likes.Post("/", s.CreateLike)
	likes.Delete("/:id", s.DeleteLike)

	follows := s.App.Group("/follows", protected)
	follows.Get("/followers", s.ListFollowers)
	follows.Get("/following", s.ListFollowing)
	follows.Post("/:userId", s.Follow)
	follows.Delete("/:userId", s.Unfollow)

	notifications := s.App.Group("/notifications", protected)
	notifications.Get("/", s.ListNotifications)
	notifications.Post("/:id/read", s.MarkNotificationRead)

	users := s.App.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/me", protected, s.CurrentUser)
	users.Get("/:id", s.GetUser)
	users.Get("/:id/threads", s.ListUserThreads)
}

// HealthCheck reports service health including database and Redis reachability.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}

	if sqlDB, err := s.DB.DB(); err != nil || sqlDB.PingContext(c.Context()) != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	} else {
		status["database"] = "ok"
	}

	if s.Redis == nil {
		status["cache"] = "disabled"
	} else if err := s.Redis.Ping(c.Context()).Err(); err != nil {
		status["cache"] = "unreachable"
	} else {
		status["cache"] = "ok"
	}

	return c.JSON(status)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	return s.App.Listen(":" + s.Config.Port)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}
