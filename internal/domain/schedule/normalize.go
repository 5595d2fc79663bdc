// Where: internal/domain/schedule/normalize.go
// What: Rule normalization and the dispatch payload.
// Why: Both target shapes share one validation policy and one payload layout.
package schedule

// Payload describes what the worker runs. Field order is part of the
// hashed identity and of the dispatch envelope.
type Payload struct {
	TaskPath string         `json:"task_path"`
	Args     []any          `json:"args"`
	Kwargs   map[string]any `json:"kwargs"`
}

// Normalized is a rule with defaults applied.
type Normalized struct {
	Payload     Payload
	Expression  string
	Enabled     bool
	Description string
}

// SkipReason explains why a rule produced no resource.
type SkipReason string

const (
	SkipMissingFunc       SkipReason = "missing func"
	SkipMissingExpression SkipReason = "missing expression"
)

// Normalize applies defaults to the rule. A rule without a function path
// or schedule expression is treated as not yet configured: ok is false and
// reason says which field is missing. Only empty strings count as missing;
// whitespace is passed through for EventBridge to validate.
func (r Rule) Normalize() (Normalized, SkipReason, bool) {
	if r.Func == "" {
		return Normalized{}, SkipMissingFunc, false
	}
	if r.Expression == "" {
		return Normalized{}, SkipMissingExpression, false
	}

	args := r.FuncArgs
	if args == nil {
		args = []any{}
	}
	kwargs := r.FuncKwargs
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	return Normalized{
		Payload: Payload{
			TaskPath: r.Func,
			Args:     args,
			Kwargs:   kwargs,
		},
		Expression:  r.Expression,
		Enabled:     enabled,
		Description: r.Desc,
	}, "", true
}
