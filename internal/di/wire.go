//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/tumieblackace/The-Kop-AI/internal/adapter/logging"
	"github.com/tumieblackace/The-Kop-AI/internal/app"
	"github.com/tumieblackace/The-Kop-AI/internal/config"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
	"github.com/tumieblackace/The-Kop-AI/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideHeadlineProvider,
		provideSummarizer,
		provideNotifier,
		provideBriefingConfig,
		usecase.NewDailyBriefing,
		app.New,
	)
	return nil, nil
}
