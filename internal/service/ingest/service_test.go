package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
)

type stubStore struct {
	inserts   []models.ActivityRecord
	upserts   []models.ActivityRecord
	insertErr error
	upsertErr error
}

func (s *stubStore) InsertActivity(ctx context.Context, rec models.ActivityRecord) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserts = append(s.inserts, rec)
	return nil
}

func (s *stubStore) UpsertDailyAggregate(ctx context.Context, rec models.ActivityRecord) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserts = append(s.upserts, rec)
	return nil
}

// passthroughTx runs fn without a real transaction.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(store *stubStore) *Service {
	log := logger.InitLogger("ingest-test", logger.LevelError)
	return New(store, passthroughTx{}, log)
}

func validMessage() models.TripCompletedMessage {
	return models.TripCompletedMessage{
		WorkerID:     "w_123",
		StartTime:    time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC),
		DurationMins: 45,
		NetEarnings:  18.5,
		Zone:         "center",
	}
}

func TestIngest(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	if err := svc.Ingest(context.Background(), validMessage()); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if len(store.inserts) != 1 || len(store.upserts) != 1 {
		t.Fatalf("got %d inserts, %d upserts, want 1 each", len(store.inserts), len(store.upserts))
	}

	rec := store.inserts[0]
	if rec.Weekday != time.Monday {
		t.Errorf("Weekday = %v, want Monday", rec.Weekday)
	}
	if rec.Hour != 17 {
		t.Errorf("Hour = %d, want 17", rec.Hour)
	}
	if rec.Zone != "center" {
		t.Errorf("Zone = %q, want %q", rec.Zone, "center")
	}
}

func TestIngestDenormalizesInUTC(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	// 01:30 on Tuesday in UTC+5 is 20:30 on Monday in UTC.
	almaty := time.FixedZone("UTC+5", 5*60*60)
	msg := validMessage()
	msg.StartTime = time.Date(2025, 6, 3, 1, 30, 0, 0, almaty)

	if err := svc.Ingest(context.Background(), msg); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	rec := store.inserts[0]
	if rec.Weekday != time.Monday {
		t.Errorf("Weekday = %v, want Monday", rec.Weekday)
	}
	if rec.Hour != 20 {
		t.Errorf("Hour = %d, want 20", rec.Hour)
	}
}

func TestIngestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TripCompletedMessage)
	}{
		{"empty worker id", func(m *models.TripCompletedMessage) { m.WorkerID = "" }},
		{"zero start time", func(m *models.TripCompletedMessage) { m.StartTime = time.Time{} }},
		{"zero duration", func(m *models.TripCompletedMessage) { m.DurationMins = 0 }},
		{"negative duration", func(m *models.TripCompletedMessage) { m.DurationMins = -5 }},
		{"negative earnings", func(m *models.TripCompletedMessage) { m.NetEarnings = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}
			svc := newTestService(store)

			msg := validMessage()
			tt.mutate(&msg)

			err := svc.Ingest(context.Background(), msg)
			if !errors.Is(err, types.ErrInvalidActivityEvent) {
				t.Fatalf("Ingest() error = %v, want ErrInvalidActivityEvent", err)
			}
			if len(store.inserts) != 0 {
				t.Errorf("store received %d inserts, want 0", len(store.inserts))
			}
		})
	}
}

func TestIngestDuplicateIsIgnored(t *testing.T) {
	store := &stubStore{insertErr: types.ErrDuplicateActivity}
	svc := newTestService(store)

	if err := svc.Ingest(context.Background(), validMessage()); err != nil {
		t.Fatalf("Ingest() error = %v, want nil for duplicate", err)
	}
	if len(store.upserts) != 0 {
		t.Errorf("aggregate updated %d times for duplicate, want 0", len(store.upserts))
	}
}

func TestIngestStoreFailure(t *testing.T) {
	store := &stubStore{insertErr: errors.New("connection refused")}
	svc := newTestService(store)

	err := svc.Ingest(context.Background(), validMessage())
	if !errors.Is(err, types.ErrDatabaseFailed) {
		t.Fatalf("Ingest() error = %v, want ErrDatabaseFailed", err)
	}
}

func TestIngestUpsertFailure(t *testing.T) {
	store := &stubStore{upsertErr: errors.New("deadlock detected")}
	svc := newTestService(store)

	err := svc.Ingest(context.Background(), validMessage())
	if !errors.Is(err, types.ErrDatabaseFailed) {
		t.Fatalf("Ingest() error = %v, want ErrDatabaseFailed", err)
	}
}
