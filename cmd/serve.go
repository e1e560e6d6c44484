package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shrinkr/internal/app"
	"shrinkr/internal/jobs"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := app.New(ctx, cfg, logger, app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		scheduler := jobs.NewScheduler(logger)
		if cfg.PurgeSchedule != "" {
			job := jobs.NewPurgeJob(a.URLService, cfg.PurgeRetention, time.Minute)
			if err := scheduler.Add(cfg.PurgeSchedule, job); err != nil {
				return err
			}
			scheduler.Start()
			logger.Info("purge job scheduled",
				zap.String("schedule", cfg.PurgeSchedule),
				zap.Duration("retention", cfg.PurgeRetention),
			)
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           a.Router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("server starting", zap.Int("port", cfg.Port), zap.String("base_url", cfg.BaseURL))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := scheduler.Stop(shutdownCtx); err != nil {
			logger.Warn("purge job did not stop in time", zap.Error(err))
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	_ = v.BindPFlag("port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}
