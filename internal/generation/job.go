// Package generation turns a profile and preferences into plan text by
// submitting a prompt to an asynchronous assistant job and polling it.
package generation

import (
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrMissingCredential = errors.New("generation credential is missing or invalid")
	ErrJobFailed         = errors.New("plan generation failed")
	ErrTimedOut          = errors.New("plan generation timed out")
	ErrTransport         = errors.New("could not reach the plan generation service")
)

// JobStatus is the coarse state of a submitted job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// JobHandle identifies a submitted job.
type JobHandle struct {
	ThreadID string
	RunID    string
}

// JobClient is the external asynchronous generation service.
type JobClient interface {
	Submit(ctx context.Context, prompt string) (JobHandle, error)
	Status(ctx context.Context, handle JobHandle) (JobStatus, error)
	Result(ctx context.Context, handle JobHandle) (string, error)
}
