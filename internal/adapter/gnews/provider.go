package gnews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
)

const searchFeedTemplate = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// Provider fetches topic coverage from the Google News RSS search
// feed. It needs no API key and backs up the primary provider.
type Provider struct {
	parser  *gofeed.Parser
	feedURL string
	logger  ports.Logger
}

var _ ports.HeadlineProvider = (*Provider)(nil)

// New builds a Google News RSS provider with the supplied timeout.
func New(timeout time.Duration, logger ports.Logger) *Provider {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "Mozilla/5.0 (compatible; KopAIBriefing/1.0; +https://github.com/tumieblackace/The-Kop-AI)"

	return &Provider{
		parser:  parser,
		feedURL: searchFeedTemplate,
		logger:  logger,
	}
}

// TopHeadlines searches the feed for the quoted topic phrase and
// returns the most recent items first.
func (p *Provider) TopHeadlines(ctx context.Context, topic string, limit int) ([]model.Article, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := url.QueryEscape(fmt.Sprintf("%q", topic))
	feed, err := p.parser.ParseURLWithContext(fmt.Sprintf(p.feedURL, query), ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch google news feed: %w", err)
	}

	articles := make([]model.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title, source := splitTitle(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		articles = append(articles, model.Article{
			Title:       title,
			Source:      source,
			URL:         link,
			PublishedAt: published,
		})
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("google news feed returned no usable items")
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	if len(articles) > limit {
		articles = articles[:limit]
	}

	return articles, nil
}

// splitTitle separates "Headline - Publisher" style Google News titles.
func splitTitle(raw string) (title, source string) {
	raw = strings.TrimSpace(raw)
	if idx := strings.LastIndex(raw, " - "); idx > 0 {
		return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+3:])
	}
	return raw, ""
}
