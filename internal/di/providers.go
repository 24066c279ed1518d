package di

import (
	"log/slog"
	"os"

	"github.com/tumieblackace/The-Kop-AI/internal/adapter/gemini"
	"github.com/tumieblackace/The-Kop-AI/internal/adapter/gnews"
	"github.com/tumieblackace/The-Kop-AI/internal/adapter/headlines"
	"github.com/tumieblackace/The-Kop-AI/internal/adapter/newsapi"
	"github.com/tumieblackace/The-Kop-AI/internal/adapter/sendgrid"
	"github.com/tumieblackace/The-Kop-AI/internal/config"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
	"github.com/tumieblackace/The-Kop-AI/internal/usecase"
)

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideHeadlineProvider(cfg *config.Config, logger ports.Logger) ports.HeadlineProvider {
	primary := newsapi.New(cfg.NewsAPIKey, cfg.RequestTimeout, logger)
	fallback := gnews.New(cfg.RequestTimeout, logger)
	return headlines.NewCompositeProvider(logger, primary, fallback)
}

func provideSummarizer(cfg *config.Config, logger ports.Logger) ports.Summarizer {
	return gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RequestTimeout, logger)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return sendgrid.NewMailer(
		cfg.SendGridAPIKey,
		cfg.FromEmail,
		cfg.FromName,
		cfg.RecipientEmail,
		cfg.RequestTimeout,
		logger,
	)
}

func provideBriefingConfig(cfg *config.Config) usecase.Config {
	return usecase.Config{
		Topic:        cfg.Topic,
		ArticleLimit: cfg.ArticleLimit,
	}
}
