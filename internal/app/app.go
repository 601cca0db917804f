package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	cancelReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/cancel_reservation"
	changeStatusHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/change_reservation_status"
	confirmReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/confirm_reservation"
	contentHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/content"
	createReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/delete_reservation"
	getAvailableTablesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_available_tables"
	getReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/list_reservations"
	tablesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/tables"
	updateReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/update_reservation"
	usersHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/users"
	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/cache"
	contentRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/content"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/migrations"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
	userRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/mailer"
	"github.com/m04kA/SMC-RestaurantService/internal/jobs"
	contentService "github.com/m04kA/SMC-RestaurantService/internal/service/content"
	reservationsService "github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
	tablesService "github.com/m04kA/SMC-RestaurantService/internal/service/tables"
	usersService "github.com/m04kA/SMC-RestaurantService/internal/service/users"
	cancelReservationUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/cancel_reservation"
	confirmReservationUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/confirm_reservation"
	createReservationUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
	getAvailableTablesUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_tables"
	updateReservationUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-RestaurantService/pkg/auth"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/txmanager"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// App собранный сервис: БД, кэш, планировщик и HTTP сервер
type App struct {
	cfg           *config.Config
	log           *logger.Logger
	db            *sql.DB
	metrics       *metrics.Metrics
	stopMetricsCh chan struct{}
	cache         cache.Cache
	closeCache    func() error
	scheduler     *jobs.Scheduler
	expire        *jobs.ExpireReservations
	server        *http.Server
}

// OpenDB открывает пул соединений PostgreSQL и проверяет соединение
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("app: failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("app: failed to ping database: %w", err)
	}
	return db, nil
}

// New собирает зависимости сервиса
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log, stopMetricsCh: make(chan struct{})}

	// Инициализируем метрики (если включены)
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := OpenDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	a.db = db
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if a.metrics != nil {
		wrappedDB = dbmetrics.WrapWithDefault(db, a.metrics, cfg.Metrics.ServiceName, a.stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	if cfg.Database.MigrateOnStart {
		applied, err := migrations.Up(ctx, wrappedDB, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Кэш главной страницы
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cache.Options{
			Addr:        cfg.Cache.Addr,
			Password:    cfg.Cache.Password,
			DB:          cfg.Cache.DB,
			Prefix:      cfg.Cache.Prefix,
			PingTimeout: time.Duration(cfg.Cache.PingTimeout) * time.Second,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.cache, a.closeCache = redisCache, redisCache.Close
		log.Info("Redis cache connected (addr=%s)", cfg.Cache.Addr)
	} else {
		a.cache = cache.Noop{}
	}

	// Почта
	mailClient, err := mailer.NewClient(mailer.Config{
		Enabled:  cfg.Mail.Enabled,
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		Timeout:  time.Duration(cfg.Mail.Timeout) * time.Second,
		BaseURL:  cfg.Mail.BaseURL,
	}, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	location, err := cfg.Reservations.Location()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app: %w", err)
	}
	hours, err := openingHours(cfg.Reservations)
	if err != nil {
		a.Close()
		return nil, err
	}
	policy := availability.Policy{
		SlotDuration: cfg.Reservations.SlotDuration(),
		Buffer:       cfg.Reservations.BufferDuration(),
		Location:     location,
	}

	// Инициализируем репозитории
	tables := tableRepo.NewRepository(wrappedDB)
	reservations := reservationRepo.NewRepository(wrappedDB)
	users := userRepo.NewRepository(wrappedDB)
	content := contentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB,
		txmanager.WithSerializableRetries(cfg.Database.SerializableRetries))

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Minute, cfg.Auth.Issuer)

	// Инициализируем use cases
	createUC := createReservationUC.NewUseCase(tables, reservations, txMgr, policy, mailClient, a.metrics, log)
	confirmUC := confirmReservationUC.NewUseCase(tables, reservations, txMgr, policy, mailClient, a.metrics, log)
	cancelUC := cancelReservationUC.NewUseCase(tables, reservations, txMgr, mailClient, a.metrics, log)
	updateUC := updateReservationUC.NewUseCase(tables, reservations, txMgr, policy, a.metrics, log)
	availableUC, err := getAvailableTablesUC.NewUseCase(tables, reservations, policy, hours, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservations, confirmUC, cancelUC, location, log)
	tableSvc := tablesService.NewService(tables, a.cache, log)
	contentSvc := contentService.NewService(content, tables, a.cache,
		time.Duration(cfg.Cache.HomeTTL)*time.Second, log)
	userSvc := usersService.NewService(users, reservations, tokens, mailClient, cfg.Auth.BcryptCost, log)

	// Инициализируем handlers
	h := Handlers{
		CreateReservation:  createReservationHandler.NewHandler(createUC, log),
		GetReservation:     getReservationHandler.NewHandler(reservationSvc, log),
		ConfirmReservation: confirmReservationHandler.NewHandler(confirmUC, log),
		CancelReservation:  cancelReservationHandler.NewHandler(cancelUC, log),
		UpdateReservation:  updateReservationHandler.NewHandler(updateUC, log),
		DeleteReservation:  deleteReservationHandler.NewHandler(reservationSvc, log),
		ListReservations:   listReservationsHandler.NewHandler(reservationSvc, log),
		ChangeStatus:       changeStatusHandler.NewHandler(reservationSvc, log),
		UserReservations:   getUserReservationsHandler.NewHandler(reservationSvc, log),
		AvailableTables:    getAvailableTablesHandler.NewHandler(availableUC, log),
		Tables:             tablesHandler.NewHandler(tableSvc, log),
		Content:            contentHandler.NewHandler(contentSvc, log),
		Users:              usersHandler.NewHandler(userSvc, log),
	}

	router := NewRouter(h, RouterOptions{
		Tokens:      tokens,
		Metrics:     a.metrics,
		MetricsPath: cfg.Metrics.Path,
	})

	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Фоновые задачи
	if cfg.Jobs.Enabled {
		a.scheduler, err = jobs.NewScheduler(log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.expire = jobs.NewExpireReservations(reservations, tables, txMgr, policy.SlotDuration, location, log)
	}

	return a, nil
}

// Run запускает HTTP сервер и планировщик и блокируется до отмены ctx
func (a *App) Run(ctx context.Context) error {
	if a.scheduler != nil {
		interval := time.Duration(a.cfg.Jobs.ExpireIntervalSec) * time.Second
		if err := a.scheduler.Every(ctx, interval, a.expire); err != nil {
			return err
		}
		a.scheduler.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Starting server on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
	}

	a.log.Info("Server stopped gracefully")
	return nil
}

// Close освобождает ресурсы: планировщик, сбор метрик, кэш и БД
func (a *App) Close() {
	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(); err != nil {
			a.log.Error("Close: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	select {
	case <-a.stopMetricsCh:
	default:
		close(a.stopMetricsCh)
	}

	if a.closeCache != nil {
		if err := a.closeCache(); err != nil {
			a.log.Error("Close: failed to close cache: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error("Close: failed to close database: %v", err)
		}
	}
}

// Handler корневой HTTP-обработчик
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func openingHours(cfg config.ReservationsConfig) (getAvailableTablesUC.Hours, error) {
	open, err := types.NewTimeStringFromString(cfg.OpenAt)
	if err != nil {
		return getAvailableTablesUC.Hours{}, fmt.Errorf("app: reservations.open_at: %w", err)
	}
	closeAt, err := types.NewTimeStringFromString(cfg.CloseAt)
	if err != nil {
		return getAvailableTablesUC.Hours{}, fmt.Errorf("app: reservations.close_at: %w", err)
	}
	return getAvailableTablesUC.Hours{
		Open:  open,
		Close: closeAt,
		Step:  time.Duration(cfg.StepMinutes) * time.Minute,
	}, nil
}
