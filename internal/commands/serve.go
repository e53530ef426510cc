package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/app"
	"github.com/taltal7719-art/4muluk-cloud-bot/pkg/config"
	"github.com/taltal7719-art/4muluk-cloud-bot/pkg/logger"
)

var (
	healthPort int
	logLevel   string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot, the daily scheduler and the health endpoint",
	Long: `Start the 4 Muluk bot service.

This will start all components:
• Telegram long-polling loop for commands and inline navigation
• Daily report scheduler firing at the configured local time
• HTTP health endpoint for platform liveness probes

Examples:
  4muluk-cloud-bot serve                    # Start with environment config
  4muluk-cloud-bot serve --health-port 9000 # Custom health probe port
  4muluk-cloud-bot serve --log-level debug  # Enable debug logging`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&healthPort, "health-port", "p", 0, "Health probe port (overrides HEALTH_PORT)")
	serveCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env file is optional, system env vars take precedence.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Printf("Note: .env file not loaded: %v\n", err)
	}

	// A missing bot token fails here and terminates the process with a
	// descriptive message before anything starts serving.
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if healthPort != 0 {
		cfg.Health.Port = healthPort
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	log.Info("🚀 Starting 4 Muluk day-profile bot")

	application := app.New(cfg, log)

	if err := application.Initialize(); err != nil {
		log.WithError(err).Error("Failed to initialize application")
		return err
	}

	if err := application.Start(); err != nil {
		log.WithError(err).Error("Failed to start application")
		return err
	}

	// Wait for interrupt signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-interrupt
	log.WithField("signal", sig.String()).Info("🛑 Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shutdownComplete := make(chan struct{})
	go func() {
		if err := application.Stop(); err != nil {
			log.WithError(err).Error("❌ Application shutdown error")
		}
		close(shutdownComplete)
	}()

	select {
	case <-shutdownComplete:
		log.Info("✅ Application shutdown complete")
	case <-shutdownCtx.Done():
		log.Warn("⚠️ Shutdown timeout - forcing exit")
		os.Exit(1)
	}

	return nil
}
