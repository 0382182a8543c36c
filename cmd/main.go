package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/muhammadheryan/gas-booking/application/auth"
	bookingapp "github.com/muhammadheryan/gas-booking/application/booking"
	"github.com/muhammadheryan/gas-booking/cmd/config"
	redisclient "github.com/muhammadheryan/gas-booking/cmd/redis"
	"github.com/muhammadheryan/gas-booking/database"
	_ "github.com/muhammadheryan/gas-booking/docs"
	bookingRepo "github.com/muhammadheryan/gas-booking/repository/booking"
	cacheRepo "github.com/muhammadheryan/gas-booking/repository/cache"
	userRepo "github.com/muhammadheryan/gas-booking/repository/user"
	"github.com/muhammadheryan/gas-booking/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gas-booking/transport"
	"github.com/muhammadheryan/gas-booking/utils/logger"
	"go.uber.org/zap"
)

// @title GAS BOOKING API
// @version 1.0
// @description Gas cylinder delivery booking API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Apply schema migrations before serving
	if err := database.RunMigrations(cfg.GetDSN()); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client (profile cache degrades gracefully without it)
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Initialize RabbitMQ delivery-reminder pipeline
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start reminder consumer", zap.Error(err))
		}
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	CacheRepo := cacheRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, CacheRepo)
	BookingApp := bookingapp.NewBookingApp(cfg, BookingRepo, publisher)

	httpTransport := transport.NewTransport(AuthApp, BookingApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
