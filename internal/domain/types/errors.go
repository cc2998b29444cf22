package types

import "errors"

var (
	// ErrWorkerNotFound - worker id is absent from the historical activity
	// source entirely. The only data-related error that crosses the service
	// boundary; everything softer is reflected as flags on the result.
	ErrWorkerNotFound = errors.New("worker not found")

	ErrInvalidWorkerID = errors.New("invalid worker id format")

	ErrDatabaseFailed = errors.New("database operation failed")

	// ErrInvalidActivityEvent - an ingestion event failed validation and will
	// never succeed on retry.
	ErrInvalidActivityEvent = errors.New("invalid activity event")

	// ErrDuplicateActivity - the trip was already ingested. Expected under
	// at-least-once delivery, must not be counted twice.
	ErrDuplicateActivity = errors.New("activity already recorded")

	ErrInvalidToken = errors.New("invalid or expired token")
)
