package app

import (
	"net/http"

	"care-app-go/internal/config"
	"care-app-go/internal/db"
	clientdomain "care-app-go/internal/domain/client"
	dashboarddomain "care-app-go/internal/domain/dashboard"
	programdomain "care-app-go/internal/domain/program"
	reviewdomain "care-app-go/internal/domain/review"
	"care-app-go/internal/observability"
	clientrepo "care-app-go/internal/repository/postgres/client"
	dashboardrepo "care-app-go/internal/repository/postgres/dashboard"
	programrepo "care-app-go/internal/repository/postgres/program"
	reviewrepo "care-app-go/internal/repository/postgres/review"
	"care-app-go/internal/transport/httpserver"
	"care-app-go/internal/transport/httpserver/handler"
	"care-app-go/internal/validation"
	"care-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg         config.Config
	httpServer  *http.Server
	db          *gorm.DB
	log         logger.Logger
	sentryFlush func()
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	sentryFlush, err := observability.InitSentry(cfg.Sentry, cfg.Env)
	if err != nil {
		return nil, err
	}
	if cfg.Sentry.DSN == "" {
		log.Debug("app: sentry disabled, no DSN configured")
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	programService := programdomain.NewService(programrepo.NewPostgres(dbConn))
	clientService := clientdomain.NewService(clientrepo.NewPostgres(dbConn))
	reviewService := reviewdomain.NewService(reviewrepo.NewPostgres(dbConn))
	dashboardService := dashboarddomain.NewServiceWithConfig(
		dashboardrepo.NewPostgres(dbConn),
		dashboarddomain.Config{TopProgramsCount: cfg.Dashboard.TopProgramsCount},
	)

	handlers := handler.New(programService, clientService, reviewService, dashboardService, validation.New(), log)

	log.Info("app: initializing router")
	metrics := observability.NewMetrics()
	router := httpserver.NewRouter(cfg, handlers, metrics)

	return &App{
		cfg:         cfg,
		httpServer:  httpserver.New(cfg, router),
		db:          dbConn,
		log:         log,
		sentryFlush: sentryFlush,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	a.sentryFlush()

	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
