package model

import (
	"time"
)

// OperationStatus represents the outcome of an external operation
type OperationStatus string

const (
	// OperationRunning means the operation was started and has not reported back
	OperationRunning OperationStatus = "Running"

	// OperationSucceeded means the completion signal reported success
	OperationSucceeded OperationStatus = "Success"

	// OperationFailed means the completion signal reported failure
	OperationFailed OperationStatus = "Failed"

	// OperationCanceled means the host abandoned the operation
	OperationCanceled OperationStatus = "Canceled"
)

// String returns the string representation of OperationStatus
func (s OperationStatus) String() string {
	return string(s)
}

// IsFinished returns true if the operation reported a terminal outcome
func (s OperationStatus) IsFinished() bool {
	return s == OperationSucceeded || s == OperationFailed || s == OperationCanceled
}

// Repository is one of the downloadable choices offered by the host screen
type Repository struct {
	Key  string
	Name string
	URL  string
}

// Operation is the host-side record of a long-running external request
// started when the user clicks the button
type Operation struct {
	ID         string
	Repository Repository
	Status     OperationStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when the request was issued
	FinishedAt time.Time // when the completion signal arrived
}

// Elapsed returns how long the operation ran, or has been running until now
func (op *Operation) Elapsed(now time.Time) time.Duration {
	if op.StartedAt.IsZero() {
		return 0
	}
	if !op.FinishedAt.IsZero() {
		return op.FinishedAt.Sub(op.StartedAt)
	}
	return now.Sub(op.StartedAt)
}

// GetDisplayName returns the repository name, or its URL when unnamed
func (op *Operation) GetDisplayName() string {
	if op.Repository.Name != "" {
		return op.Repository.Name
	}
	return op.Repository.URL
}
