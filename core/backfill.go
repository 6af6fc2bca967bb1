package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oakline/prism/schema"
)

// BackfillStepData merges raw per-question responses into step data, for
// assessments answered question-by-question rather than step-by-step.
// Question identifiers are dotted paths into the step-data document, e.g.
// "tech_stack.data_quality". Later responses win over earlier ones and over
// already-submitted step data.
func BackfillStepData(existing *schema.StepData, responses []schema.AssessmentResponse) (*schema.StepData, error) {
	if len(responses) == 0 {
		return existing, nil
	}

	doc := make(map[string]any)
	if existing != nil {
		raw, err := json.Marshal(existing)
		if err != nil {
			return nil, fmt.Errorf("encode step data: %w", err)
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode step data: %w", err)
		}
	}

	for _, resp := range responses {
		path := strings.Split(resp.QuestionIdentifier, ".")
		if len(path) == 0 || path[0] == "" {
			continue
		}
		value, ok := responseValue(resp)
		if !ok {
			continue
		}
		setNested(doc, path, value)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode merged step data: %w", err)
	}
	merged := &schema.StepData{}
	if err := json.Unmarshal(raw, merged); err != nil {
		return nil, fmt.Errorf("decode merged step data: %w", err)
	}
	return merged, nil
}

// responseValue picks the populated variant of a response.
func responseValue(resp schema.AssessmentResponse) (any, bool) {
	switch {
	case resp.Text != nil:
		return *resp.Text, true
	case resp.Numeric != nil:
		return *resp.Numeric, true
	case resp.Boolean != nil:
		return *resp.Boolean, true
	case len(resp.JSON) > 0:
		var v any
		if err := json.Unmarshal(resp.JSON, &v); err != nil {
			return nil, false
		}
		return v, true
	default:
		return nil, false
	}
}

// setNested writes value at the dotted path, creating intermediate objects
// as needed. A non-object in the middle of the path is replaced.
func setNested(doc map[string]any, path []string, value any) {
	current := doc
	for _, part := range path[:len(path)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}
