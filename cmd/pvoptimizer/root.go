package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/labsnomad/pv-storage-optimizer/internal/api"
	"github.com/labsnomad/pv-storage-optimizer/internal/calc"
	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
	"github.com/labsnomad/pv-storage-optimizer/internal/config"
	"github.com/labsnomad/pv-storage-optimizer/internal/economics"
	"github.com/labsnomad/pv-storage-optimizer/internal/logger"
	"github.com/labsnomad/pv-storage-optimizer/internal/metrics"
	"github.com/labsnomad/pv-storage-optimizer/internal/store"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "pvoptimizer",
	Short: "Household PV + storage sizing service",
	RunE:  serve,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// newCalculator wires the evaluation pipeline from config.
func newCalculator(cfg *config.Config) (*calc.Calculator, error) {
	cat, err := catalog.New(cfg.Catalog.Modules...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	analyzer := economics.New(cfg.Economics.BatteryCostPerKWh)
	st := store.New(cfg.Cache.Capacity)
	return calc.New(cat, analyzer, st, recorder), nil
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Configure(cfg.Logging.Level, cfg.Logging.Pretty)
	log := logger.New("main")

	calculator, err := newCalculator(cfg)
	if err != nil {
		return err
	}

	router := api.NewRouter(calculator, api.Options{StaticDir: cfg.Server.StaticDir})
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
