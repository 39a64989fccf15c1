package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjformat/jjlf/internal/carddb"
	"github.com/jjformat/jjlf/internal/config"
	"github.com/jjformat/jjlf/internal/database"
	"github.com/jjformat/jjlf/internal/edopro"
	"github.com/jjformat/jjlf/internal/services"
	"github.com/jjformat/jjlf/internal/usecase"
	"github.com/jjformat/jjlf/internal/ygoprodeck"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "jjlf",
	Short:        "jjlf - banlist history builder for the JJ2 format",
	Long:         "jjlf folds the JJ2 change files into the format's banlist history and deploys it as EDOPro lflists.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/jjlf/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newCardCmd())
	rootCmd.AddCommand(newMCPCmd())
}

// app carries what every command shares: configuration, logger and the
// card catalog.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	dbCtx   *database.Context
	repo    *carddb.Repository
	catalog *carddb.Catalog
}

// openApp loads configuration and opens the catalog cache. The catalog itself
// is loaded by loadApp.
func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	dbCtx, err := database.CreateDatabase(cfg.DBPath())
	if err != nil {
		return nil, err
	}

	client := ygoprodeck.NewClient(ygoprodeck.Options{
		CardInfoURL:       cfg.Provider.CardInfoURL,
		CardSetsURL:       cfg.Provider.CardSetsURL,
		RequestsPerSecond: cfg.Provider.RequestsPerSecond,
		UserAgent:         cfg.Provider.UserAgent,
	})

	return &app{
		cfg:    cfg,
		logger: logger,
		dbCtx:  dbCtx,
		repo:   carddb.NewRepository(services.NewCatalogService(dbCtx), client, logger),
	}, nil
}

// loadApp opens the app and loads the catalog, rebuilding it when stale.
func loadApp(ctx context.Context) (*app, error) {
	a, err := openApp()
	if err != nil {
		return nil, err
	}

	catalog, err := a.repo.Load(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	a.catalog = catalog
	return a, nil
}

func (a *app) close() {
	_ = database.CloseDatabase(a.dbCtx)
}

func (a *app) deploy(clean bool) *usecase.Deploy {
	return usecase.NewDeploy(a.catalog, usecase.DeployOptions{
		ChangesDir:    a.cfg.ChangesDir,
		DeployDir:     a.cfg.DeployDir,
		HistoryPrefix: a.cfg.Format.HistoryPrefix,
		JuniorPrefix:  a.cfg.Format.JuniorPrefix,
		Lists: edopro.Options{
			Prefix:        a.cfg.Format.Prefix,
			HistoryPrefix: a.cfg.Format.HistoryPrefix,
			ActiveLists:   a.cfg.Format.ActiveLists,
		},
		Clean: clean,
	}, a.logger)
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
