package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakline/prism/schema"
)

func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, "High", GetPlainLabel(schema.HighPriority))
	assert.Equal(t, "Medium", GetPlainLabel(schema.MediumPriority))
	assert.Equal(t, "Low", GetPlainLabel(schema.LowPriority))
	assert.Equal(t, "Not recommended", GetPlainLabel(schema.NotRecommended))
	assert.Equal(t, "Not recommended", GetPlainLabel(schema.Priority("bogus")))
}

func TestGetColorLabel(t *testing.T) {
	// The colored label always contains the plain text regardless of
	// whether escapes are active in the test environment.
	for _, p := range []schema.Priority{schema.HighPriority, schema.MediumPriority, schema.LowPriority, schema.NotRecommended} {
		assert.Contains(t, GetColorLabel(p), GetPlainLabel(p))
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1,000"},
		{150000, "$150,000"},
		{1234567, "$1,234,567"},
		{-25000, "-$25,000"},
		{99.99, "$99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMoney(tt.amount))
	}
}

func TestGetTerminalWidth(t *testing.T) {
	assert.Equal(t, 120, GetTerminalWidth(120))
	// In a non-terminal test run the fallback applies.
	assert.Positive(t, GetTerminalWidth(0))
}

func TestTransientErrors(t *testing.T) {
	base := errors.New("connection reset")
	wrapped := Transient(base)

	assert.True(t, IsTransient(wrapped))
	assert.ErrorIs(t, wrapped, base)
	assert.False(t, IsTransient(base))
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(ErrAssessmentNotFound))

	// Cancellation is terminal even when wrapped as transient.
	assert.False(t, IsTransient(Transient(context.Canceled)))
	assert.False(t, IsTransient(Transient(context.DeadlineExceeded)))

	// Transience survives further wrapping.
	assert.True(t, IsTransient(StageError("fetch", 42, wrapped)))
}

func TestStageError(t *testing.T) {
	err := StageError("persist", 42, ErrAssessmentNotFound)
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
	assert.Contains(t, err.Error(), "persist")
	assert.Contains(t, err.Error(), "42")
}
