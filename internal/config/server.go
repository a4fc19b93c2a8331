package config

import (
	"FinanceTracker/database/postgres"
	authHandler "FinanceTracker/internal/api/auth/handler"
	authRepository "FinanceTracker/internal/api/auth/repository"
	authService "FinanceTracker/internal/api/auth/service"
	transactionHandler "FinanceTracker/internal/api/transaction/handler"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type ServerOption func(*Server) error

type Server struct {
	engine          *fiber.App
	db              *sqlx.DB
	storeDriver     string
	log             *logrus.Logger
	middleware      middleware.Middleware
	validator       *validator.Validate
	utils           utils.IUtils
	bcryptUtils     bcrypt.IBcrypt
	handlers        []handler
	redisServer     redis.IRedis
	summaryCacheTTL time.Duration
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
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
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

// WithStore picks the storage backend from STORE_DRIVER. Postgres is the
// default; "memory" keeps everything in process and needs no database.
func WithStore() ServerOption {
	return func(s *Server) error {
		driver := os.Getenv("STORE_DRIVER")
		if driver == "" {
			driver = StoreDriverPostgres
		}

		switch driver {
		case StoreDriverMemory:
			s.storeDriver = driver
			return nil
		case StoreDriverPostgres:
			s.storeDriver = driver
			return WithDatabase()(s)
		default:
			return fmt.Errorf("unknown STORE_DRIVER %q", driver)
		}
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
		s.storeDriver = StoreDriverPostgres
		return nil
	}
}

// WithRedisServer enables the summary cache. A nil client leaves it off.
func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer

		ttl, err := time.ParseDuration(os.Getenv("SUMMARY_CACHE_TTL"))
		if err == nil && ttl > 0 {
			s.summaryCacheTTL = ttl
		}
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
	var (
		authRepo        authRepository.Repository
		transactionRepo transactionRepository.Repository
	)

	if s.storeDriver == StoreDriverMemory || s.db == nil {
		s.log.Warn("Using in-memory store, data is lost on restart")
		authRepo = authRepository.NewMemory(s.log)
		transactionRepo = transactionRepository.NewMemory(s.log)
	} else {
		authRepo = authRepository.New(s.db, s.log)
		transactionRepo = transactionRepository.New(s.db, s.log)
	}

	// Auth Domain
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Transaction Domain
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, s.redisServer, s.summaryCacheTTL, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, transactionHandlers)
}

// Mount attaches middleware and every registered handler under /api.
func (s *Server) Mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	router := s.engine.Group("/api")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	s.Mount()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests and releases the store and cache.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil {
			s.log.Errorf("Failed to close database: %v", cerr)
		}
	}
	if s.redisServer != nil {
		if cerr := s.redisServer.Close(); cerr != nil {
			s.log.Errorf("Failed to close redis: %v", cerr)
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
			"store":   s.storeDriver,
		})
	})
}
