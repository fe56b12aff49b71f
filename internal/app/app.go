package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Konstantinn1179/SERVICE/internal/bot"
	"github.com/Konstantinn1179/SERVICE/internal/config"
	"github.com/Konstantinn1179/SERVICE/internal/handler"
	"github.com/Konstantinn1179/SERVICE/internal/middleware"
	"github.com/Konstantinn1179/SERVICE/internal/notification"
	"github.com/Konstantinn1179/SERVICE/internal/repository"
	"github.com/Konstantinn1179/SERVICE/internal/router"
	"github.com/Konstantinn1179/SERVICE/internal/scheduler"
	"github.com/Konstantinn1179/SERVICE/internal/service"
	"github.com/Konstantinn1179/SERVICE/internal/service/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	botAPI     *tgbotapi.BotAPI
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	listener   *bot.Listener
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CarService",
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

	if err = app.initStores(); err != nil {
		return nil, fmt.Errorf("init stores: %w", err)
	}

	if err = app.initBot(); err != nil {
		return nil, fmt.Errorf("init bot: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStores() error {
	if a.cfg.Postgres.Enabled() {
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

		if err := db.Master.PingContext(context.Background()); err != nil {
			return fmt.Errorf("pinging database: %w", err)
		}

		a.db = db
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
			logger.String("host", a.cfg.Postgres.Host),
			logger.Int("port", a.cfg.Postgres.Port),
			logger.String("database", a.cfg.Postgres.Database),
		)
	} else {
		a.log.Warn("postgres is not configured, primary store disabled")
	}

	if a.cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})

		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}

		a.redis = client
		a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
	}

	return nil
}

func (a *App) initBot() error {
	if a.cfg.Telegram.BotToken == "" {
		return nil
	}

	botAPI, err := tgbotapi.NewBotAPI(a.cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}

	a.botAPI = botAPI
	a.log.Info("telegram bot initialized",
		logger.String("username", botAPI.Self.UserName),
		logger.Int64("admin_chat_id", a.cfg.Telegram.AdminChatID),
	)

	return nil
}

func (a *App) initServices() error {
	location, err := a.cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	var primary, secondary ports.BookingStore
	if a.db != nil {
		primary = repository.NewPostgresStore(a.db)
	}
	if a.redis != nil {
		secondary = repository.NewRedisStore(a.redis)
	}
	store := repository.NewFallbackStore(primary, secondary, a.log)

	notifier := notification.NewTelegramNotifier(a.botAPI, a.cfg.Telegram.AdminChatID, a.log)

	slotService := service.NewSlotService(store, a.cfg.Booking.OpenHour, a.cfg.Booking.CloseHour, a.log)
	bookingService := service.NewBookingService(store, slotService, notifier, a.log)
	statusService := service.NewStatusService(store, notifier, a.log)

	a.scheduler = scheduler.New(store, notifier, a.cfg.Reminder.Spec, location, a.log)
	a.listener = bot.NewListener(
		a.botAPI, notifier, statusService,
		a.cfg.Telegram.AdminChatID, a.cfg.Telegram.WebAppURL,
		a.log,
	)

	h := handler.NewHandler(
		slotService, bookingService, statusService,
		location, a.cfg.Booking.OpenHour, a.cfg.Booking.CloseHour,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

	go func() {
		if err := a.scheduler.Start(ctx); err != nil {
			a.log.Error("scheduler failed", logger.String("error", err.Error()))
		}
	}()
	go a.listener.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	if !a.cfg.Postgres.Enabled() {
		a.log.Warn("postgres is not configured, skipping migrations")
		return nil
	}

	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
