package ports

import (
	"context"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
)

// HeadlineProvider fetches recent news coverage for a topic, most
// recent first, returning at most limit articles.
type HeadlineProvider interface {
	TopHeadlines(ctx context.Context, topic string, limit int) ([]model.Article, error)
}
