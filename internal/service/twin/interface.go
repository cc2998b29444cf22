package twin

import (
	"context"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
)

// HistoryProvider loads the immutable activity snapshot for one worker.
// Implementations return types.ErrWorkerNotFound for unknown workers.
type HistoryProvider interface {
	History(ctx context.Context, workerID string) (*models.ActivityHistory, error)
}

// ResultPublisher announces a finished optimization to downstream consumers.
type ResultPublisher interface {
	PublishOptimizationCompleted(ctx context.Context, msg models.OptimizationCompletedMessage) error
}
