package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	bidapp "github.com/muhammadheryan/task-marketplace/application/bid"
	dashboardapp "github.com/muhammadheryan/task-marketplace/application/dashboard"
	messageapp "github.com/muhammadheryan/task-marketplace/application/message"
	paymentapp "github.com/muhammadheryan/task-marketplace/application/payment"
	reviewapp "github.com/muhammadheryan/task-marketplace/application/review"
	taskapp "github.com/muhammadheryan/task-marketplace/application/task"
	userapp "github.com/muhammadheryan/task-marketplace/application/user"
	"github.com/muhammadheryan/task-marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/task-marketplace/cmd/redis"
	_ "github.com/muhammadheryan/task-marketplace/docs"
	bidRepo "github.com/muhammadheryan/task-marketplace/repository/bid"
	messageRepo "github.com/muhammadheryan/task-marketplace/repository/message"
	paymentRepo "github.com/muhammadheryan/task-marketplace/repository/payment"
	accountRepo "github.com/muhammadheryan/task-marketplace/repository/paymentaccount"
	redisRepo "github.com/muhammadheryan/task-marketplace/repository/redis"
	reviewRepo "github.com/muhammadheryan/task-marketplace/repository/review"
	taskRepo "github.com/muhammadheryan/task-marketplace/repository/task"
	txRepo "github.com/muhammadheryan/task-marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/task-marketplace/repository/user"
	"github.com/muhammadheryan/task-marketplace/thirdparty/gateway"
	"github.com/muhammadheryan/task-marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/task-marketplace/transport"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title TASK MARKETPLACE API
// @version 1.0
// @description Task marketplace backend: clients post tasks, taskers bid and fulfill them.
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Reminder publisher is optional; the API runs without the broker.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, task reminders disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	TaskRepo := taskRepo.NewTaskRepository(db)
	BidRepo := bidRepo.NewBidRepository(db)
	AccountRepo := accountRepo.NewPaymentAccountRepository(db)
	PaymentRepo := paymentRepo.NewPaymentRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	MessageRepo := messageRepo.NewMessageRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Payment gateway stays a stub; only placeholder identifiers are issued.
	Gateway := gateway.NewStubGateway()

	// Initialize application layers
	rh := &transport.RestHandler{
		UserApp:      userapp.NewUserApp(UserRepo),
		TaskApp:      taskapp.NewTaskApp(TaskRepo, publisher),
		BidApp:       bidapp.NewBidApp(BidRepo),
		PaymentApp:   paymentapp.NewPaymentApp(AccountRepo, PaymentRepo, TaskRepo, RedisRepo, Gateway),
		ReviewApp:    reviewapp.NewReviewApp(TxRepo, ReviewRepo, UserRepo, RedisRepo),
		MessageApp:   messageapp.NewMessageApp(MessageRepo, TaskRepo),
		DashboardApp: dashboardapp.NewDashboardApp(cfg, UserRepo, TaskRepo, PaymentRepo, RedisRepo),
	}

	httpTransport := transport.NewTransport(rh, cfg.Internal.APIKey)

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
