// Where: internal/domain/schedule/types.go
// What: Schedule configuration types (groups, rules, options).
// Why: Give the compiler a typed view of the `sws` configuration block.
package schedule

import (
	"github.com/poruru/sws-schedules/internal/domain/value"
)

// Options is the `sws` block of a service configuration.
type Options struct {
	Schedules      []Group `json:"schedules"`
	PrefixTemplate string  `json:"prefixTemplate,omitempty"`
}

// Group bundles a delivery target with an ordered list of rules.
// Addresses are kept as decoded values so CloudFormation intrinsics
// (Ref, Fn::GetAtt, Fn::ImportValue) pass through untouched.
type Group struct {
	QueueArn         any     `json:"queueArn,omitempty"`
	FuncArn          any     `json:"funcArn,omitempty"`
	Tags             any     `json:"tags,omitempty"`
	Prefix           *string `json:"prefix,omitempty"`
	Rules            []Rule  `json:"rules,omitempty"`
	InvokePermission bool    `json:"invokePermission,omitempty"`
}

// Rule maps one schedule expression to a task invocation.
type Rule struct {
	Func       string         `json:"func,omitempty"`
	FuncArgs   []any          `json:"func_args,omitempty"`
	FuncKwargs map[string]any `json:"func_kwargs,omitempty"`
	Expression string         `json:"expression,omitempty"`
	Enabled    *bool          `json:"enabled,omitempty"`
	Desc       string         `json:"desc,omitempty"`
}

// TargetKind identifies which delivery shape a group resolves to.
type TargetKind string

const (
	TargetNone     TargetKind = "none"
	TargetQueue    TargetKind = "queue"
	TargetFunction TargetKind = "function"
)

// Target reports the delivery shape of the group. A direct-invoke address
// takes precedence over a queue address.
func (g Group) Target() TargetKind {
	switch {
	case !value.IsEmpty(g.FuncArn):
		return TargetFunction
	case !value.IsEmpty(g.QueueArn):
		return TargetQueue
	default:
		return TargetNone
	}
}

// HasBothTargets reports whether both addresses are configured.
func (g Group) HasBothTargets() bool {
	return !value.IsEmpty(g.FuncArn) && !value.IsEmpty(g.QueueArn)
}

// TagList returns the group's tags in CloudFormation list form.
// A list is returned as configured; a string map becomes sorted
// {Key, Value} entries; anything else yields an empty list.
func (g Group) TagList() []any {
	if list := value.AsSlice(g.Tags); list != nil {
		return list
	}
	tags := value.AsMap(g.Tags)
	out := make([]any, 0, len(tags))
	for _, key := range value.SortedKeys(tags) {
		out = append(out, map[string]any{
			"Key":   key,
			"Value": value.AsString(tags[key]),
		})
	}
	return out
}
