package ports

import (
	"context"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
)

// Notifier delivers a finished briefing to its recipient.
type Notifier interface {
	Send(ctx context.Context, briefing model.Briefing) error
}
