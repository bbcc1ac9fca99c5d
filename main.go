package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookhouse/config"
	"bookhouse/database"
	bookingRepo "bookhouse/database/repository/booking"
	catalogRepo "bookhouse/database/repository/catalog"
	"bookhouse/database/repository/memory"
	paymentRepo "bookhouse/database/repository/payment"
	userRepo "bookhouse/database/repository/user"
	"bookhouse/handlers"
	"bookhouse/routes"
	"bookhouse/services/booking"
	"bookhouse/services/catalog"
	"bookhouse/services/payment"
	"bookhouse/services/user"
	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// stores groups the repositories selected by STORE_DRIVER.
type stores struct {
	bookings bookingRepo.BookingRepository
	users    userRepo.UserRepository
	payments paymentRepo.PaymentRepository
	services catalogRepo.ServiceRepository
	books    catalogRepo.BookRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		repos  stores
		client *mongo.Client
	)
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("main: using in-memory store, data is lost on restart")
		repos = stores{
			bookings: memory.NewBookingRepo(),
			users:    memory.NewUserRepo(),
			payments: memory.NewPaymentRepo(),
			services: memory.NewServiceRepo(memory.DemoServices()...),
			books:    memory.NewBookRepo(),
		}
	default:
		client, err = database.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("main: failed to initialize store", zap.Error(err))
		}
		logger.Info("Connected to MongoDB successfully!", zap.String("database", cfg.DatabaseName))

		db := client.Database(cfg.DatabaseName)
		users := userRepo.NewMongoUserRepo(db)
		if err := users.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("main: failed to ensure user indexes", zap.Error(err))
		}
		repos = stores{
			bookings: bookingRepo.NewMongoBookingRepo(db),
			users:    users,
			payments: paymentRepo.NewMongoPaymentRepo(db),
			services: catalogRepo.NewMongoServiceRepo(db),
			books:    catalogRepo.NewMongoBookRepo(db),
		}
	}

	if cfg.StripeKey == "" {
		logger.Warn("main: STRIPE_SECRET_KEY is empty, payment intents will fail")
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// services.
	userService := &user.DefaultUserService{
		Repo:   repos.users,
		Tokens: tokens,
		Logger: logger.Named("user"),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     repos.bookings,
		Payments: repos.payments,
		Strict:   cfg.PaymentStrict,
		Logger:   logger.Named("booking"),
	}
	catalogService := &catalog.DefaultCatalogService{
		Services: repos.services,
		Books:    repos.books,
	}
	intentService := payment.NewIntentService(payment.NewStripeProvider(cfg.StripeKey, nil))

	handlerBundle := handlers.NewHandlerBundle(
		tokens,
		userService,
		handlers.NewBookingHandler(bookingService, logger),
		handlers.NewUserHandler(userService, logger),
		handlers.NewCatalogHandler(catalogService, logger),
		handlers.NewPaymentHandler(intentService, logger),
	)
	router, err := routes.NewRouter(handlerBundle, logger, cfg.MaxRequestsPerMin, cfg.TrustedProxies)
	if err != nil {
		logger.Fatal("main: failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Book App listening on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if client != nil {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
