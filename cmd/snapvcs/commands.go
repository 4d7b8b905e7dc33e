package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/handlers"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/internal/routes"
	"github.com/just-nibble/snapvcs/internal/seeder"
	"github.com/just-nibble/snapvcs/internal/storage"
	"github.com/just-nibble/snapvcs/internal/storage/migrations"
	"github.com/just-nibble/snapvcs/internal/usecases"
	"github.com/just-nibble/snapvcs/pkg/config"
	"github.com/just-nibble/snapvcs/pkg/log"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "snapvcs",
		Short:         "Snapshot versioning service",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	cmd.AddCommand(newServeCmd(&configPath))
	cmd.AddCommand(newMigrateCmd(&configPath))
	cmd.AddCommand(newSeedCmd(&configPath))
	return cmd
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(*configPath)
			if err != nil {
				return err
			}

			db, err := storage.OpenAndMigrate(cfg.Database, logger)
			if err != nil {
				return err
			}
			defer storage.Close(db)

			server := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           newHandler(db, cfg, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info().Str("addr", cfg.HTTP.Addr).Str("driver", cfg.Database.Driver).Msg("server is running")
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(*configPath)
			if err != nil {
				return err
			}

			db, err := storage.OpenAndMigrate(cfg.Database, logger)
			if err != nil {
				return err
			}
			defer storage.Close(db)

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			version, dirty, err := migrations.Version(sqlDB, cfg.Database.Driver)
			if err != nil {
				return err
			}
			logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema up to date")
			return nil
		},
	}
}

func newSeedCmd(configPath *string) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo repository for an owner with no repositories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(*configPath)
			if err != nil {
				return err
			}

			db, err := storage.OpenAndMigrate(cfg.Database, logger)
			if err != nil {
				return err
			}
			defer storage.Close(db)

			uc := newUsecases(db, cfg, logger)
			s := seeder.Seeder{
				Repositories: uc.repositories,
				WorkTree:     uc.workTree,
				Snapshots:    uc.snapshots,
				Log:          logger,
			}
			if _, err := s.SeedDatabase(cmd.Context(), owner); err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner id to seed")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func setup(configPath string) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, log.New(cfg.Log.Level, cfg.Log.Format), nil
}

type usecaseSet struct {
	repositories usecases.GitRepositoryUsecase
	authors      usecases.AuthorUseCase
	branches     usecases.BranchUsecase
	workTree     usecases.WorkTreeUsecase
	snapshots    usecases.SnapshotUsecase
	history      usecases.HistoryUsecase
	status       usecases.StatusUsecase
}

func newUsecases(db *gorm.DB, cfg config.Config, logger zerolog.Logger) usecaseSet {
	stores := repository.NewStores(db)
	tx := repository.NewGormTransactor(db)
	clock := domain.RealClock{}
	ids := domain.UUIDGenerator{}

	return usecaseSet{
		repositories: usecases.NewGitRepositoryUsecase(stores.Repositories, tx, clock, ids, logger),
		authors:      usecases.NewAuthorUseCase(stores.Repositories, stores.Authors),
		branches:     usecases.NewBranchUsecase(stores, tx, clock, ids, logger),
		workTree:     usecases.NewWorkTreeUsecase(stores, clock, logger),
		snapshots:    usecases.NewSnapshotUsecase(stores, tx, clock, ids, logger),
		history:      usecases.NewHistoryUsecase(stores, cfg.History.MaxDepth, logger),
		status:       usecases.NewStatusUsecase(stores),
	}
}

func newHandler(db *gorm.DB, cfg config.Config, logger zerolog.Logger) http.Handler {
	uc := newUsecases(db, cfg, logger)

	return routes.NewRouter(routes.Handlers{
		Repositories: handlers.NewRepositoryHandler(uc.repositories, uc.authors),
		Files:        handlers.NewFileHandler(uc.workTree),
		Commits:      handlers.NewCommitHandler(uc.snapshots, uc.history),
		Branches:     handlers.NewBranchHandler(uc.branches),
		Status:       handlers.NewStatusHandler(uc.status),
		Health: handlers.NewHealthHandler(handlers.PingFunc(func(ctx context.Context) error {
			return storage.Ping(ctx, db)
		})),
	}, logger)
}
