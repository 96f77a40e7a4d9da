package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shippinglabel/internal/adapters/out/postgres/orderrepo"
	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "shippinglabel"

var envFile string

// NewRootCommand builds the CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Shipping label creation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with environment variables, ignored when missing")

	root.AddCommand(serveCmd(), tableCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			config, err := LoadConfig(envFile)
			if err != nil {
				return err
			}
			return serve(ctx, config)
		},
	}
}

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the label flow transition table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return labelflow.RenderTable(cmd.OutOrStdout())
		},
	}
}

func serve(ctx context.Context, config Config) error {
	logger := logging.New(serviceName, config.Env, config.LogLevel)

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	app := NewCompositionRoot(config, gormDB, logger)
	defer app.Close()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().Register(e)

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server starting", "port", config.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.InfoContext(shutdownCtx, "HTTP server shutting down")
	return e.Shutdown(shutdownCtx)
}
