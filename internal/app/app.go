package app

import (
	"context"
	"time"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
	"github.com/tumieblackace/The-Kop-AI/internal/usecase"
)

// Upper bound for a full fetch-summarize-send cycle.
const runTimeout = 2 * time.Minute

// App runs a single briefing cycle and exits. The daily cadence is
// owned by an external scheduler, not by this process.
type App struct {
	usecase *usecase.DailyBriefing
	logger  ports.Logger
}

// New constructs an App instance.
func New(briefing *usecase.DailyBriefing, logger ports.Logger) *App {
	return &App{
		usecase: briefing,
		logger:  logger,
	}
}

// Run executes the briefing use case once under a bounded context.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	if err := a.usecase.Run(runCtx); err != nil {
		a.logger.Error(runCtx, "briefing run failed", "error", err)
		return err
	}
	return nil
}
