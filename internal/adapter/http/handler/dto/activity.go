package dto

import (
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/pkg/validator"
)

// RecordActivityRequest is the HTTP alternative to the trip.completed event,
// used by platforms that push activity directly instead of via the broker.
type RecordActivityRequest struct {
	StartTime    time.Time `json:"start_time"`
	DurationMins float64   `json:"duration_mins"`
	NetEarnings  float64   `json:"net_earnings"`
	Zone         string    `json:"zone"`
}

func (r *RecordActivityRequest) Validate(v *validator.Validator) {
	// StartTime
	v.Check(!r.StartTime.IsZero(), "start_time", "must be provided")
	v.Check(r.StartTime.Before(time.Now().Add(time.Hour)), "start_time", "must not be in the future")

	// DurationMins
	v.Check(r.DurationMins > 0, "duration_mins", "must be positive")
	v.Check(r.DurationMins <= 24*60, "duration_mins", "must not exceed 24 hours")

	// NetEarnings
	v.Check(r.NetEarnings >= 0, "net_earnings", "must not be negative")

	// Zone
	v.Check(len(r.Zone) < 50, "zone", "must be less than 50 characters")
}

func (r *RecordActivityRequest) ToMessage(workerID string) models.TripCompletedMessage {
	return models.TripCompletedMessage{
		WorkerID:     workerID,
		StartTime:    r.StartTime,
		DurationMins: r.DurationMins,
		NetEarnings:  r.NetEarnings,
		Zone:         r.Zone,
	}
}
