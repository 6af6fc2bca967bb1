package core

import (
	"fmt"

	"github.com/oakline/prism/schema"
)

// priorityTable is the fixed decision table over (value level, effort
// level). It is data rather than branching code so that totality over all
// nine combinations is verifiable by inspection and by an exhaustive test.
var priorityTable = map[schema.Level]map[schema.Level]schema.Priority{
	schema.HighLevel: {
		schema.LowLevel:    schema.HighPriority,
		schema.MediumLevel: schema.HighPriority,
		schema.HighLevel:   schema.MediumPriority,
	},
	schema.MediumLevel: {
		schema.LowLevel:    schema.HighPriority,
		schema.MediumLevel: schema.MediumPriority,
		schema.HighLevel:   schema.LowPriority,
	},
	schema.LowLevel: {
		schema.LowLevel:    schema.LowPriority,
		schema.MediumLevel: schema.LowPriority,
		schema.HighLevel:   schema.NotRecommended,
	},
}

// ResolvePriority maps a (value level, effort level) pair to its priority
// tier. The table is total; an unknown level is a programming error, not a
// data error.
func ResolvePriority(value, effort schema.Level) (schema.Priority, error) {
	row, ok := priorityTable[value]
	if !ok {
		return "", fmt.Errorf("no priority row for value level %q", value)
	}
	p, ok := row[effort]
	if !ok {
		return "", fmt.Errorf("no priority entry for (%q, %q)", value, effort)
	}
	return p, nil
}
