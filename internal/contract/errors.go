package contract

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the engine's terminal failure modes. All of them are
// surfaced to callers without retry.
var (
	// ErrAssessmentNotFound means the id does not resolve to a stored
	// assessment.
	ErrAssessmentNotFound = errors.New("assessment not found")

	// ErrAssessmentEmpty means the assessment exists but has neither step
	// data nor responses.
	ErrAssessmentEmpty = errors.New("assessment has no data")

	// ErrInvalidWeights means a weight vector fails the sum-to-1.0
	// invariant.
	ErrInvalidWeights = errors.New("weights must sum to 1.0")
)

// TransientError wraps a store failure worth retrying, such as a timeout or
// a dropped connection. Anything not wrapped in TransientError is terminal.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient store failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as retryable. A nil err returns nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err is worth retrying. Context cancellation is
// never transient; the caller's deadline wins.
func IsTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var te *TransientError
	return errors.As(err, &te)
}

// StageError annotates a terminal error with the assessment id and the
// pipeline stage that raised it, for diagnosability.
func StageError(stage string, assessmentID int64, err error) error {
	return fmt.Errorf("stage %s: assessment %d: %w", stage, assessmentID, err)
}
