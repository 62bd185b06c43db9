package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/villagekeep/villagekeep-backend/internal/db"
	"github.com/villagekeep/villagekeep-backend/internal/platform/envutil"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	store, err := db.New(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	// Schema migration runs on boot unless the deployment manages it
	// separately.
	if envutil.Bool("AUTO_MIGRATE", true) {
		if err := store.AutoMigrateAll(); err != nil {
			log.Sync()
			return nil, fmt.Errorf("database automigrate: %w", err)
		}
	}
	theDB := store.DB()

	reposet := wireRepos(theDB, log)
	cache := wireRedis(cfg, log)
	serviceset := wireServices(theDB, log, cfg, reposet, cache)
	handlerset := wireHandlers(log, serviceset)
	mw := wireMiddleware(log, cfg)
	router := wireRouter(cfg, handlerset, mw)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
