package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
)

// fallbackSummary replaces the summary when generation fails, so a
// briefing with headlines still goes out.
const fallbackSummary = "A summary could not be generated for today's briefing."

// DailyBriefing orchestrates one fetch, summarize and send cycle.
type DailyBriefing struct {
	headlines  ports.HeadlineProvider
	summarizer ports.Summarizer
	notifier   ports.Notifier
	logger     ports.Logger
	topic      string
	limit      int
	fallback   io.Writer
}

// Config controls the briefing run.
type Config struct {
	Topic        string
	ArticleLimit int
}

// NewDailyBriefing constructs a DailyBriefing use case.
func NewDailyBriefing(
	headlines ports.HeadlineProvider,
	summarizer ports.Summarizer,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg Config,
) *DailyBriefing {
	return &DailyBriefing{
		headlines:  headlines,
		summarizer: summarizer,
		notifier:   notifier,
		logger:     logger,
		topic:      cfg.Topic,
		limit:      cfg.ArticleLimit,
		fallback:   os.Stdout,
	}
}

// Run executes one briefing cycle. Stage failures are logged and
// absorbed: a failed fetch ends the run quietly, a failed summary is
// replaced with fixed text, and a failed send falls back to the
// console. The article list handed to the notifier is exactly the list
// the fetch produced.
func (d *DailyBriefing) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "starting briefing run", "topic", d.topic)

	articles := d.fetchHeadlines(ctx)
	if len(articles) == 0 {
		d.logger.Warn(ctx, "no articles found, nothing to brief", "topic", d.topic)
		return nil
	}

	briefing := model.Briefing{
		Topic:    d.topic,
		Summary:  d.summarize(ctx, articles),
		Articles: articles,
	}

	if err := d.notifier.Send(ctx, briefing); err != nil {
		d.logger.Error(ctx, "briefing email not sent", "error", err)
		d.printFallback(briefing)
	}

	d.logger.Info(ctx, "briefing run completed", "articles", len(articles), "duration", time.Since(start))
	return nil
}

func (d *DailyBriefing) fetchHeadlines(ctx context.Context) []model.Article {
	articles, err := d.headlines.TopHeadlines(ctx, d.topic, d.limit)
	if err != nil {
		d.logger.Warn(ctx, "failed to fetch headlines", "error", err)
		return nil
	}
	return articles
}

func (d *DailyBriefing) summarize(ctx context.Context, articles []model.Article) string {
	summary, err := d.summarizer.Summarize(ctx, d.topic, articles)
	if err != nil {
		d.logger.Warn(ctx, "failed to generate summary", "error", err)
		return fallbackSummary
	}
	return strings.TrimSpace(summary)
}

func (d *DailyBriefing) printFallback(briefing model.Briefing) {
	fmt.Fprintf(d.fallback, "--- %s Briefing (Console Fallback) ---\n\n", briefing.Topic)
	fmt.Fprintln(d.fallback, briefing.Summary)
	fmt.Fprintln(d.fallback, "\nToday's Top Headlines:")
	for _, article := range briefing.Articles {
		source := article.Source
		if source == "" {
			source = "Unknown"
		}
		fmt.Fprintf(d.fallback, "- %s (%s)\n", article.Title, source)
	}
}
