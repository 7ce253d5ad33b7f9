package dispatch

import (
	"time"

	"github.com/google/uuid"
)

// Status is the result of a single delivery.
type Status int

const (
	StatusFailed Status = iota
	StatusDelivered
)

func (s Status) String() string {
	if s == StatusDelivered {
		return "delivered"
	}
	return "failed"
}

// Outcome describes one delivery. Err is a *DeliveryError when Status is
// StatusFailed and nil otherwise.
type Outcome struct {
	Index    int
	Endpoint string
	Status   Status
	Err      error
	Duration time.Duration
}

// Report summarizes a dispatch. Outcomes follow snapshot order.
type Report struct {
	ID        uuid.UUID
	Attempted int
	Delivered int
	Failed    int
	Outcomes  []Outcome
	StartedAt time.Time
	Duration  time.Duration
}

// Failures returns the failed outcomes in snapshot order.
func (r Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
