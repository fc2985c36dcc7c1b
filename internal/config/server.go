package config

import (
	"ExpenseTracker/database"
	authHandler "ExpenseTracker/internal/api/auth/handler"
	authRepository "ExpenseTracker/internal/api/auth/repository"
	authService "ExpenseTracker/internal/api/auth/service"
	transactionHandler "ExpenseTracker/internal/api/transaction/handler"
	transactionRepository "ExpenseTracker/internal/api/transaction/repository"
	transactionService "ExpenseTracker/internal/api/transaction/service"
	"ExpenseTracker/internal/middleware"
	"ExpenseTracker/pkg/bcrypt"
	jwtPkg "ExpenseTracker/pkg/jwt"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	bcryptUtils bcrypt.IBcrypt
	jwt         jwtPkg.IJWT
	handlers    []handler
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
		return nil, errors.New("fiber app is required")
	}
	if server.log == nil {
		return nil, errors.New("logger is required")
	}
	if server.db == nil {
		return nil, errors.New("database is required")
	}
	if server.jwt == nil {
		return nil, errors.New("jwt service is required")
	}
	if server.middleware == nil {
		return nil, errors.New("middleware is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.bcryptUtils == nil {
		server.bcryptUtils = bcrypt.New()
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

func WithDatabase(cfg database.Config) ServerOption {
	return func(s *Server) error {
		db, err := database.New(cfg)
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

func WithJWT(secret string, ttl time.Duration) ServerOption {
	return func(s *Server) error {
		if secret == "" {
			return errors.New("JWT_ACCESS_TOKEN_SECRET is required")
		}
		s.jwt = jwtPkg.New(secret, ttl)
		return nil
	}
}

func WithMiddleware(rps float64, burst int) ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return errors.New("logger must be initialized before middleware")
		}
		if s.jwt == nil {
			return errors.New("jwt must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.jwt, middleware.Options{
			RateLimit: rate.Limit(rps),
			RateBurst: burst,
		})
		return nil
	}
}

func WithBcryptUtils(cost int) ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.NewWithCost(cost)
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware)
	s.engine.Use(s.middleware.NewMetricsMiddleware)

	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.jwt)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Transactions
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	s.setupHealthCheck()
	s.engine.Get("/metrics", s.middleware.MetricsHandler())

	s.handlers = append(s.handlers, authHandlers, transactionHandlers)
	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

// App exposes the assembled engine so tests can drive it with app.Test.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run(port string) error {
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests, waits up to timeout for in-flight ones
// and then closes the database handle.
func (s *Server) Shutdown(timeout time.Duration) error {
	shutdownErr := s.engine.ShutdownWithTimeout(timeout)

	if err := s.db.Close(); err != nil {
		s.log.Errorf("Failed to close database: %v", err)
		return errors.Join(shutdownErr, err)
	}

	return shutdownErr
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("Personal Expense Tracker API")
	})
}
