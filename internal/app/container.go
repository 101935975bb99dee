package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/config"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database/migration"
	dbpostgres "github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database/postgres"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/eligibility"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/infrastructure/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/jwt"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/repository"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/migrations"
)

// Container owns the long-lived dependencies shared by the server and the CLI.
type Container struct {
	Config      config.Config
	Logger      *log.Logger
	DB          database.DB
	Cache       *cache.Redis
	JWT         *jwt.HMACService
	Engine      *eligibility.Engine
	Eligibility *usecase.Eligibility
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.ConnectNamed(cctx, cfg.Database, cfg.App.AppName)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		n, err := NewMigrationRunner(logger).Run(ctx, db.SQLDB())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Printf("[App] migrations applied=%d", n)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	engine := eligibility.NewEngine(
		eligibility.Policy{
			GateRequiredSkills: cfg.Eligibility.GateRequiredSkills,
			GateEnglish:        cfg.Eligibility.GateEnglish,
		},
		eligibility.WithParallelism(cfg.Eligibility.Workers, cfg.Eligibility.ParallelThreshold),
	)

	uc := usecase.NewEligibilityUsecase(engine, usecase.EligibilityDeps{
		Jobs:         repository.NewPostgresJobRepository(db),
		Students:     repository.NewPostgresStudentRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		Settings:     repository.NewPostgresSettingsRepository(db),
		Population:   repository.NewPostgresPopulationRepository(db),
		Cache:        redisCache,
		CacheTTL:     cfg.Eligibility.CacheTTL,
		Logger:       logger,
	})

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Cache:       redisCache,
		JWT:         jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),
		Engine:      engine,
		Eligibility: uc,
	}, nil
}

func NewMigrationRunner(logger *log.Logger) migration.Runner {
	return migration.Runner{Source: migrations.FS, Logger: logger}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
