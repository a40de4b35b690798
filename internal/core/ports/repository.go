package ports

import (
	"context"

	"github.com/ewilliams-labs/deepcuts/internal/core/domain"
)

// HistoryRepository stores imported listening histories.
type HistoryRepository interface {
	Save(ctx context.Context, h domain.ListeningHistory) error
	GetByID(ctx context.Context, id string) (domain.ListeningHistory, error)
	List(ctx context.Context) ([]domain.HistorySummary, error)
}
