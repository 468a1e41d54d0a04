package generation

import (
	"context"
	"time"
)

const (
	DefaultPollInterval    = time.Second
	DefaultMaxPollAttempts = 120
)

// PollState is the terminal (or current) state of a polled job.
type PollState string

const (
	StatePending   PollState = "pending"
	StateCompleted PollState = "completed"
	StateFailed    PollState = "failed"
	StateTimedOut  PollState = "timed_out"
)

// Poller checks a job's status until it reaches a terminal state, the attempt
// budget runs out, or ctx is done. The next check is scheduled only after the
// previous one returned.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int
}

func NewPoller(interval time.Duration, maxAttempts int) Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPollAttempts
	}
	return Poller{Interval: interval, MaxAttempts: maxAttempts}
}

// Wait returns StateCompleted, StateFailed or StateTimedOut with a nil error.
// A status error or ctx cancellation stops polling and is returned with
// StatePending.
func (p Poller) Wait(ctx context.Context, client JobClient, handle JobHandle) (PollState, error) {
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		status, err := client.Status(ctx, handle)
		if err != nil {
			return StatePending, err
		}

		switch status {
		case JobCompleted:
			return StateCompleted, nil
		case JobFailed:
			return StateFailed, nil
		}

		if attempt == p.MaxAttempts {
			break
		}

		timer := time.NewTimer(p.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return StatePending, ctx.Err()
		case <-timer.C:
		}
	}
	return StateTimedOut, nil
}
