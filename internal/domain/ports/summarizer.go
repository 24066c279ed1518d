package ports

import (
	"context"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
)

// Summarizer condenses a set of headlines into briefing prose.
type Summarizer interface {
	Summarize(ctx context.Context, topic string, articles []model.Article) (string, error)
}
