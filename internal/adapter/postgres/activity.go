package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
	"github.com/Temutjin2k/driver-twin/pkg/metrics"
	pg "github.com/Temutjin2k/driver-twin/pkg/postgres"
)

const serviceName = "twin-service"

// historyWindowDays bounds how far back a snapshot reaches. Older activity
// describes a worker who no longer exists.
const historyWindowDays = 90

type ActivityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepo(db *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// History assembles the immutable snapshot the twin computes from. Rows come
// back in deterministic order so the snapshot hash of identical data never
// drifts between runs.
func (r *ActivityRepo) History(ctx context.Context, workerID string) (*models.ActivityHistory, error) {
	const op = "activityRepo.History"

	exists, err := r.Exists(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, types.ErrWorkerNotFound
	}

	since := time.Now().UTC().AddDate(0, 0, -historyWindowDays)

	history := &models.ActivityHistory{WorkerID: workerID}

	if history.Records, err = r.records(ctx, workerID, since); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	if history.Daily, err = r.dailyAggregates(ctx, workerID, since); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	if history.SurgeTable, err = r.surgeTable(ctx); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	if history.Incentives, err = r.incentives(ctx, workerID, since); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return history, nil
}

// Exists reports whether the worker has any recorded activity at all.
func (r *ActivityRepo) Exists(ctx context.Context, workerID string) (bool, error) {
	const op = "activityRepo.Exists"
	start := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM worker_activity WHERE worker_id = $1);`

	var exists bool
	err := TxorDB(ctx, r.db).QueryRow(ctx, query, workerID).Scan(&exists)
	metrics.RecordDatabaseQuery(serviceName, "activity_exists", err, time.Since(start))
	if err != nil {
		return false, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	return exists, nil
}

func (r *ActivityRepo) records(ctx context.Context, workerID string, since time.Time) ([]models.ActivityRecord, error) {
	start := time.Now()

	query := `
		SELECT worker_id, start_time, duration_mins, net_earnings, COALESCE(zone, '')
		FROM worker_activity
		WHERE worker_id = $1 AND start_time >= $2
		ORDER BY start_time, net_earnings;`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, workerID, since)
	metrics.RecordDatabaseQuery(serviceName, "activity_records", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var rec models.ActivityRecord
		if err := rows.Scan(&rec.WorkerID, &rec.StartTime, &rec.DurationMins, &rec.NetEarnings, &rec.Zone); err != nil {
			return nil, err
		}
		rec.StartTime = rec.StartTime.UTC()
		rec.Weekday = rec.StartTime.Weekday()
		rec.Hour = rec.StartTime.Hour()
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ActivityRepo) dailyAggregates(ctx context.Context, workerID string, since time.Time) ([]models.DailyAggregate, error) {
	start := time.Now()

	query := `
		SELECT worker_id, day, total_earnings, total_hours, ride_count
		FROM worker_daily_aggregates
		WHERE worker_id = $1 AND day >= $2
		ORDER BY day;`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, workerID, since)
	metrics.RecordDatabaseQuery(serviceName, "daily_aggregates", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var daily []models.DailyAggregate
	for rows.Next() {
		var d models.DailyAggregate
		if err := rows.Scan(&d.WorkerID, &d.Date, &d.TotalEarnings, &d.TotalHours, &d.RideCount); err != nil {
			return nil, err
		}
		d.Date = d.Date.UTC()
		daily = append(daily, d)
	}
	return daily, rows.Err()
}

func (r *ActivityRepo) surgeTable(ctx context.Context) ([]models.SurgeEntry, error) {
	start := time.Now()

	query := `
		SELECT hour, zone, multiplier
		FROM surge_history
		ORDER BY hour, zone;`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	metrics.RecordDatabaseQuery(serviceName, "surge_table", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SurgeEntry
	for rows.Next() {
		var e models.SurgeEntry
		if err := rows.Scan(&e.Hour, &e.Zone, &e.Multiplier); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *ActivityRepo) incentives(ctx context.Context, workerID string, since time.Time) ([]models.IncentiveRecord, error) {
	start := time.Now()

	query := `
		SELECT worker_id, week_id, completion_ratio
		FROM worker_incentives
		WHERE worker_id = $1 AND created_at >= $2
		ORDER BY week_id;`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, workerID, since)
	metrics.RecordDatabaseQuery(serviceName, "incentives", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incentives []models.IncentiveRecord
	for rows.Next() {
		var inc models.IncentiveRecord
		if err := rows.Scan(&inc.WorkerID, &inc.WeekID, &inc.CompletionRatio); err != nil {
			return nil, err
		}
		incentives = append(incentives, inc)
	}
	return incentives, rows.Err()
}

// InsertActivity stores one completed trip from the ingestion stream.
// A worker can't start two trips at the same instant, so the (worker_id,
// start_time) unique index turns redelivered events into ErrDuplicateActivity.
func (r *ActivityRepo) InsertActivity(ctx context.Context, rec models.ActivityRecord) error {
	const op = "activityRepo.InsertActivity"
	start := time.Now()

	query := `
		INSERT INTO worker_activity (worker_id, start_time, duration_mins, net_earnings, zone)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''));`

	_, err := TxorDB(ctx, r.db).Exec(ctx, query,
		rec.WorkerID, rec.StartTime.UTC(), rec.DurationMins, rec.NetEarnings, rec.Zone)
	metrics.RecordDatabaseQuery(serviceName, "insert_activity", err, time.Since(start))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return types.ErrDuplicateActivity
		}
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

// UpsertDailyAggregate folds one trip into the worker's rollup for that day.
func (r *ActivityRepo) UpsertDailyAggregate(ctx context.Context, rec models.ActivityRecord) error {
	const op = "activityRepo.UpsertDailyAggregate"
	start := time.Now()

	query := `
		INSERT INTO worker_daily_aggregates (worker_id, day, total_earnings, total_hours, ride_count)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (worker_id, day) DO UPDATE SET
			total_earnings = worker_daily_aggregates.total_earnings + EXCLUDED.total_earnings,
			total_hours = worker_daily_aggregates.total_hours + EXCLUDED.total_hours,
			ride_count = worker_daily_aggregates.ride_count + 1;`

	day := rec.StartTime.UTC().Truncate(24 * time.Hour)
	_, err := TxorDB(ctx, r.db).Exec(ctx, query,
		rec.WorkerID, day, rec.NetEarnings, rec.Hours())
	metrics.RecordDatabaseQuery(serviceName, "upsert_daily_aggregate", err, time.Since(start))
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	return nil
}
