package headlines

import (
	"context"
	"strings"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
)

// CompositeProvider merges multiple headline providers together.
// Providers are queried in order, so later ones only top up what the
// earlier ones could not supply.
type CompositeProvider struct {
	logger    ports.Logger
	providers []ports.HeadlineProvider
}

var _ ports.HeadlineProvider = (*CompositeProvider)(nil)

// NewCompositeProvider constructs a provider that queries the given providers sequentially.
func NewCompositeProvider(logger ports.Logger, providers ...ports.HeadlineProvider) *CompositeProvider {
	active := make([]ports.HeadlineProvider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &CompositeProvider{
		logger:    logger,
		providers: active,
	}
}

// TopHeadlines returns up to limit articles, de-duplicated by URL/title.
func (c *CompositeProvider) TopHeadlines(ctx context.Context, topic string, limit int) ([]model.Article, error) {
	if limit <= 0 {
		return nil, nil
	}

	results := make([]model.Article, 0, limit)
	seen := make(map[string]struct{})
	var firstErr error

	for _, provider := range c.providers {
		if len(results) >= limit {
			break
		}

		items, err := provider.TopHeadlines(ctx, topic, limit-len(results))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if c.logger != nil {
				c.logger.Warn(ctx, "headline provider failed", "error", err)
			}
			continue
		}

		for _, item := range items {
			key := canonicalArticleKey(item)
			if key == "" {
				continue
			}

			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, item)

			if len(results) >= limit {
				break
			}
		}
	}

	if len(results) == 0 && firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

func canonicalArticleKey(article model.Article) string {
	if article.URL != "" {
		return strings.ToLower(strings.TrimSpace(article.URL))
	}
	if article.Title != "" {
		return strings.ToLower(strings.TrimSpace(article.Title))
	}
	return ""
}
