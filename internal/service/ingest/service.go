package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
	"github.com/Temutjin2k/driver-twin/pkg/metrics"
	"github.com/Temutjin2k/driver-twin/pkg/trm"
)

const serviceName = "twin-service"

// ActivityStore persists completed trips and their per-day rollups.
type ActivityStore interface {
	InsertActivity(ctx context.Context, rec models.ActivityRecord) error
	UpsertDailyAggregate(ctx context.Context, rec models.ActivityRecord) error
}

// Service folds trip-completed events into the activity store. The raw record
// and its daily rollup commit in one transaction so the history snapshot the
// twin later reads never sees a trip without its aggregate.
type Service struct {
	store ActivityStore
	trm   trm.TxManager
	log   logger.Logger
}

func New(store ActivityStore, txManager trm.TxManager, log logger.Logger) *Service {
	return &Service{
		store: store,
		trm:   txManager,
		log:   log,
	}
}

// Ingest stores one completed trip.
func (s *Service) Ingest(ctx context.Context, msg models.TripCompletedMessage) error {
	ctx = wrap.WithAction(ctx, types.ActionIngestActivity)
	ctx = wrap.WithWorkerID(ctx, msg.WorkerID)

	if err := validate(msg); err != nil {
		metrics.ActivityEventsIngestedTotal.WithLabelValues(serviceName, "invalid").Inc()
		return err
	}

	rec := models.ActivityRecord{
		WorkerID:     msg.WorkerID,
		StartTime:    msg.StartTime.UTC(),
		DurationMins: msg.DurationMins,
		NetEarnings:  msg.NetEarnings,
		Weekday:      msg.StartTime.UTC().Weekday(),
		Hour:         msg.StartTime.UTC().Hour(),
		Zone:         msg.Zone,
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.store.InsertActivity(ctx, rec); err != nil {
			return err
		}
		return s.store.UpsertDailyAggregate(ctx, rec)
	})
	if err != nil {
		// Redelivered event: the trip is already in, acking it is correct and
		// the rolled-back aggregate keeps the rollup single-counted.
		if errors.Is(err, types.ErrDuplicateActivity) {
			metrics.ActivityEventsIngestedTotal.WithLabelValues(serviceName, "duplicate").Inc()
			s.log.Debug(ctx, "duplicate trip ignored", "start_time", rec.StartTime)
			return nil
		}
		metrics.ActivityEventsIngestedTotal.WithLabelValues(serviceName, "error").Inc()
		return wrap.Error(ctx, fmt.Errorf("%w: %v", types.ErrDatabaseFailed, err))
	}

	metrics.ActivityEventsIngestedTotal.WithLabelValues(serviceName, "ok").Inc()
	s.log.Debug(ctx, "trip ingested", "start_time", rec.StartTime, "earnings", rec.NetEarnings)
	return nil
}

func validate(msg models.TripCompletedMessage) error {
	switch {
	case msg.WorkerID == "":
		return fmt.Errorf("%w: empty worker id", types.ErrInvalidActivityEvent)
	case msg.StartTime.IsZero():
		return fmt.Errorf("%w: zero start time", types.ErrInvalidActivityEvent)
	case msg.DurationMins <= 0:
		return fmt.Errorf("%w: non-positive duration", types.ErrInvalidActivityEvent)
	case msg.NetEarnings < 0:
		return fmt.Errorf("%w: negative earnings", types.ErrInvalidActivityEvent)
	}
	return nil
}
