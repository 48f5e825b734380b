package config

import (
	"Blognest/database/postgres"
	authHandler "Blognest/internal/api/auth/handler"
	authRepository "Blognest/internal/api/auth/repository"
	authService "Blognest/internal/api/auth/service"
	blogHandler "Blognest/internal/api/blog/handler"
	blogRepository "Blognest/internal/api/blog/repository"
	blogService "Blognest/internal/api/blog/service"
	commentHandler "Blognest/internal/api/comment/handler"
	commentRepository "Blognest/internal/api/comment/repository"
	commentService "Blognest/internal/api/comment/service"
	registrationHandler "Blognest/internal/api/registration/handler"
	registrationRepository "Blognest/internal/api/registration/repository"
	registrationService "Blognest/internal/api/registration/service"
	subscriberHandler "Blognest/internal/api/subscriber/handler"
	subscriberRepository "Blognest/internal/api/subscriber/repository"
	subscriberService "Blognest/internal/api/subscriber/service"
	"Blognest/internal/middleware"
	"Blognest/pkg/bcrypt"
	"Blognest/pkg/redis"
	"Blognest/pkg/s3"
	"Blognest/pkg/smtp"
	"Blognest/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.bcryptUtils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo, s.s3Client, s.redisServer, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	// Comment Moderation
	commentRepo := commentRepository.New(s.db, s.log)
	commentServices := commentService.NewCommentsService(s.log, commentRepo, s.utils)
	commentHandlers := commentHandler.New(s.log, s.validator, s.middleware, commentServices)

	// Subscriber Domain
	subscriberRepo := subscriberRepository.New(s.db, s.log)
	subscriberServices := subscriberService.NewSubscribersService(s.log, subscriberRepo, s.utils)
	subscriberHandlers := subscriberHandler.New(s.log, s.validator, s.middleware, subscriberServices)

	// Company Registration Review
	registrationRepo := registrationRepository.New(s.db, s.log)
	registrationServices := registrationService.NewRegistrationsService(s.log, registrationRepo, s.bcryptUtils, s.smtpMailer, s.utils)
	registrationHandlers := registrationHandler.New(s.log, s.validator, s.middleware, registrationServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, blogHandlers, commentHandlers, subscriberHandlers, registrationHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
