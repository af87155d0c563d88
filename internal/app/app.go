package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HotelBooker/internal/cache"
	"github.com/stpnv0/HotelBooker/internal/config"
	"github.com/stpnv0/HotelBooker/internal/events"
	"github.com/stpnv0/HotelBooker/internal/handler"
	"github.com/stpnv0/HotelBooker/internal/lock"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/stpnv0/HotelBooker/internal/notification"
	"github.com/stpnv0/HotelBooker/internal/payment/checkout"
	"github.com/stpnv0/HotelBooker/internal/payment/qr"
	"github.com/stpnv0/HotelBooker/internal/repository"
	"github.com/stpnv0/HotelBooker/internal/router"
	"github.com/stpnv0/HotelBooker/internal/scheduler"
	"github.com/stpnv0/HotelBooker/internal/service"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	migrationsDir  = "migrations"
	eventBufferLen = 256
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	rdb        *redis.Client
	publisher  *events.Publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HotelBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis: без адреса Redis работаем на блокировке в памяти и без кэша.
func (a *App) initRedis() error {
	if !a.cfg.Redis.Enabled() {
		a.log.Warn("redis address is empty, using in-process room lock without cache")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.rdb = rdb
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return nil
}

func (a *App) initServices() error {
	roomRepo := repository.NewRoomRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)

	var (
		locker     ports.RoomLocker = lock.NewLocal()
		quoteRooms ports.RoomRepo
	)
	if a.rdb != nil {
		locker = lock.NewRedis(a.rdb, a.cfg.Redis.LockTTL, a.cfg.Redis.LockWait)
		quoteRooms = cache.NewRoomCache(roomRepo, a.rdb, a.cfg.Redis.RoomTTL, a.log)
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	notifier := notification.Multi{tg}

	if a.cfg.Kafka.Enabled() {
		a.publisher = events.NewPublisher(
			a.cfg.Kafka.Brokers,
			a.cfg.Kafka.Topic,
			a.cfg.Kafka.Producer,
			eventBufferLen,
			a.log,
		)
		notifier = append(notifier, a.publisher)
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		roomRepo,
		quoteRooms,
		locker,
		notifier,
		service.BookingOptions{
			TaxRate:       a.cfg.Booking.TaxRate,
			MinGuestAge:   a.cfg.Booking.MinGuestAge,
			PaymentWindow: a.cfg.Scheduler.PaymentWindow,
		},
		a.log,
	)

	checkoutCfg := a.cfg.Payment.Checkout
	checkoutClient := checkout.NewClient(checkout.Config{
		BaseURL:       checkoutCfg.BaseURL,
		APIKey:        checkoutCfg.APIKey,
		WebhookSecret: checkoutCfg.WebhookSecret,
		Timeout:       checkoutCfg.Timeout,
	}, a.log)
	if !checkoutClient.Configured() {
		a.log.Warn("checkout provider is not configured, card payments disabled")
	}
	checkoutRail := checkout.NewRail(checkoutClient, a.cfg.Payment.Currency)
	qrRail := qr.NewRail(qr.Config{
		Merchant:   a.cfg.Payment.QR.Merchant,
		Currency:   a.cfg.Payment.Currency,
		DisplayTTL: a.cfg.Payment.QR.DisplayTTL,
	}, a.log)

	paymentService := service.NewPaymentService(
		paymentRepo,
		bookingRepo,
		checkoutRail,
		notifier,
		a.log,
		qrRail,
		checkoutRail,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, paymentService, handler.CheckoutURLs{
		Success: checkoutCfg.SuccessURL,
		Cancel:  checkoutCfg.CancelURL,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.publisher != nil {
		a.publisher.Start(ctx)
	}
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	// после остановки HTTP новых событий уже не будет, дописываем очередь
	if a.publisher != nil {
		a.publisher.Close()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "event publisher stopped")
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
