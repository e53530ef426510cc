package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/almanac"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/bot"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/health"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/report"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/scheduler"
	"github.com/taltal7719-art/4muluk-cloud-bot/pkg/config"
	"github.com/taltal7719-art/4muluk-cloud-bot/pkg/logger"
)

// App represents the main application: three supervised tasks (Telegram
// polling, daily reporter, health server) around a stateless aggregation
// core, all sharing only the immutable configuration.
type App struct {
	cfg    *config.Config
	logger *logrus.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Core components
	aggregator *profile.Aggregator
	formatter  *report.Formatter
	tgClient   *bot.Client
	tgBot      *bot.Bot
	reporter   *scheduler.DailyReporter
	healthSrv  *health.Server
}

// New creates a new application instance
func New(cfg *config.Config, log *logrus.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		cfg:    cfg,
		logger: log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Initialize constructs all application components
func (a *App) Initialize() error {
	engine := almanac.NewEngine()
	a.aggregator = profile.NewAggregator(engine, a.cfg.BirthDate(), profile.Options{
		Sumerian: a.cfg.Profile.SumerianEnabled,
		Eastern:  a.cfg.Profile.EasternEnabled,
	})
	a.formatter = report.NewFormatter()

	a.tgClient = bot.NewClient(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.PollTimeout,
		logger.WithComponent(a.logger, "telegram"),
	)
	a.tgBot = bot.New(
		&a.cfg.Telegram,
		a.tgClient,
		a.aggregator,
		a.formatter,
		logger.WithComponent(a.logger, "bot"),
	)

	hour, minute := a.cfg.ReportClock()
	a.reporter = scheduler.New(
		a.aggregator,
		a.formatter,
		a.tgClient,
		a.cfg.Telegram.ChatID,
		hour, minute,
		a.cfg.ReportLocation(),
		logger.WithComponent(a.logger, "scheduler"),
	)

	a.healthSrv = health.NewServer(
		&a.cfg.Health,
		a.cfg.HealthAddr(),
		logger.WithComponent(a.logger, "health"),
	)

	return nil
}

// Start starts the supervised tasks
func (a *App) Start() error {
	// Health server first so the platform probe passes during startup.
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.healthSrv.Start(); err != nil && err != http.ErrServerClosed {
			a.logger.WithError(err).Error("Health server error")
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.reporter.Run(a.ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.tgBot.Run(a.ctx)
	}()

	return nil
}

// Stop gracefully stops the application
func (a *App) Stop() error {
	a.logger.Info("Stopping application...")

	a.cancel()

	// Unblock the health server goroutine.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.healthSrv.Stop(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("Error stopping health server")
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("All goroutines stopped")
	case <-time.After(3 * time.Second):
		a.logger.Warn("Timeout waiting for goroutines to finish")
		return fmt.Errorf("shutdown timed out")
	}

	a.logger.Info("Application stopped successfully")
	return nil
}
