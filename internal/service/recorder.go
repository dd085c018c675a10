package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	"github.com/goodnatureofminers/reorgcalc7000-backend/pkg/batcher"
)

const (
	recorderFlushSize     = 100
	recorderFlushInterval = 5 * time.Second
	recorderFlushRPS      = 10
)

// BatchingRecorder buffers estimates and flushes them to the repository.
type BatchingRecorder struct {
	batcher *batcher.Batcher[model.ReorgEstimate]
}

// NewBatchingRecorder constructs a recorder over the estimate repository.
func NewBatchingRecorder(repo EstimateRepository, logger *zap.Logger) *BatchingRecorder {
	return &BatchingRecorder{
		batcher: batcher.New(
			logger.Named("estimateRecorder"),
			repo.InsertEstimates,
			recorderFlushSize,
			recorderFlushInterval,
			recorderFlushRPS,
		),
	}
}

// Start begins background flushing.
func (r *BatchingRecorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes pending estimates and stops the background loop.
func (r *BatchingRecorder) Stop() {
	r.batcher.Stop()
}

// Record queues one estimate for persistence.
func (r *BatchingRecorder) Record(ctx context.Context, estimate model.ReorgEstimate) error {
	return r.batcher.Add(ctx, estimate)
}
