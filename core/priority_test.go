package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakline/prism/schema"
)

// TestResolvePriorityTable checks every cell of the decision table.
func TestResolvePriorityTable(t *testing.T) {
	tests := []struct {
		value    schema.Level
		effort   schema.Level
		expected schema.Priority
	}{
		{schema.HighLevel, schema.LowLevel, schema.HighPriority},
		{schema.HighLevel, schema.MediumLevel, schema.HighPriority},
		{schema.HighLevel, schema.HighLevel, schema.MediumPriority},
		{schema.MediumLevel, schema.LowLevel, schema.HighPriority},
		{schema.MediumLevel, schema.MediumLevel, schema.MediumPriority},
		{schema.MediumLevel, schema.HighLevel, schema.LowPriority},
		{schema.LowLevel, schema.LowLevel, schema.LowPriority},
		{schema.LowLevel, schema.MediumLevel, schema.LowPriority},
		{schema.LowLevel, schema.HighLevel, schema.NotRecommended},
	}

	for _, tt := range tests {
		priority, err := ResolvePriority(tt.value, tt.effort)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, priority, "value=%s effort=%s", tt.value, tt.effort)
	}
}

// TestResolvePriorityTotal proves every level pair resolves without a fallback.
func TestResolvePriorityTotal(t *testing.T) {
	for _, value := range schema.ValueLevels {
		for _, effort := range schema.EffortLevels {
			priority, err := ResolvePriority(value, effort)
			assert.NoError(t, err, "pair %s/%s must resolve", value, effort)
			assert.NotEmpty(t, priority)
		}
	}
}

func TestResolvePriorityUnknownLevel(t *testing.T) {
	_, err := ResolvePriority(schema.Level("extreme"), schema.LowLevel)
	assert.Error(t, err)

	_, err = ResolvePriority(schema.HighLevel, schema.Level(""))
	assert.Error(t, err)
}
