// Where: internal/domain/compiler/compiler.go
// What: Schedule group compilation into template resources.
// Why: Produce the role, policy and rule graph for a service in one pure pass.
package compiler

import (
	"fmt"

	"github.com/poruru/sws-schedules/internal/domain/naming"
	"github.com/poruru/sws-schedules/internal/domain/resource"
	"github.com/poruru/sws-schedules/internal/domain/schedule"
)

// MaxRuleNameLength is the longest rule name EventBridge accepts.
const MaxRuleNameLength = 64

// Compiler turns schedule groups into resources for one service and stage.
type Compiler struct {
	service string
	stage   string
	prefix  *naming.PrefixRenderer
}

// Option customizes a Compiler.
type Option func(*Compiler) error

// WithPrefixTemplate replaces the template used for groups without a prefix.
// An empty template keeps the default.
func WithPrefixTemplate(text string) Option {
	return func(c *Compiler) error {
		if text == "" {
			return nil
		}
		renderer, err := naming.NewPrefixRenderer(text)
		if err != nil {
			return err
		}
		c.prefix = renderer
		return nil
	}
}

func New(service, stage string, opts ...Option) (*Compiler, error) {
	renderer, err := naming.NewPrefixRenderer(naming.DefaultPrefixTemplate)
	if err != nil {
		return nil, err
	}
	c := &Compiler{service: service, stage: stage, prefix: renderer}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// PrefixTemplate returns the template used for groups without a prefix.
func (c *Compiler) PrefixTemplate() string {
	return c.prefix.Text()
}

// GroupResult records what one group contributed.
type GroupResult struct {
	Index          int
	Prefix         string
	Target         schedule.TargetKind
	RoleKey        string
	PolicyKey      string
	RuleKeys       []string
	PermissionKeys []string
}

// SkippedRule identifies a rule that produced no resource.
type SkippedRule struct {
	Group  int
	Rule   int
	Reason schedule.SkipReason
}

// Result is the outcome of one Compile call.
type Result struct {
	Resources   resource.Map
	Groups      []GroupResult
	Skipped     []SkippedRule
	Overwritten []string
	Warnings    []string
}

// SkippedCount returns how many rules were dropped during normalization.
func (r Result) SkippedCount() int {
	return len(r.Skipped)
}

// Compile processes groups and their rules in order. Later resources
// replace earlier ones stored under the same reference key.
func (c *Compiler) Compile(groups []schedule.Group) (Result, error) {
	out := Result{Resources: resource.Map{}}
	for index, group := range groups {
		if len(group.Rules) == 0 {
			continue
		}
		kind := group.Target()
		if kind == schedule.TargetNone {
			continue
		}
		prefix, err := c.groupPrefix(group, index)
		if err != nil {
			return Result{}, fmt.Errorf("schedule group %d: %w", index, err)
		}
		if group.HasBothTargets() {
			out.warnf("schedule group %d sets both funcArn and queueArn; using funcArn", index)
		}

		summary := GroupResult{Index: index, Prefix: prefix, Target: kind}
		addr := addressing{prefix: prefix}
		switch kind {
		case schedule.TargetFunction:
			addr.binding = FunctionBinding{FunctionArn: group.FuncArn}
		case schedule.TargetQueue:
			roleName := prefix + "-role"
			summary.RoleKey = naming.ReferenceKey(roleName)
			summary.PolicyKey = naming.ReferenceKey(prefix + "-role-policy")
			out.put(summary.RoleKey, resource.Role(roleName, group.TagList()))
			out.put(summary.PolicyKey, resource.Policy(group.QueueArn, summary.RoleKey))
			addr.binding = QueueBinding{QueueArn: group.QueueArn, RoleRef: summary.RoleKey}
		}

		for ruleIndex, rule := range group.Rules {
			normalized, reason, ok := rule.Normalize()
			if !ok {
				out.Skipped = append(out.Skipped, SkippedRule{Group: index, Rule: ruleIndex, Reason: reason})
				continue
			}
			res, err := resolve(normalized, addr)
			if err != nil {
				return Result{}, fmt.Errorf("schedule group %d rule %d: %w", index, ruleIndex, err)
			}
			if len(res.name) > MaxRuleNameLength {
				out.warnf("rule name %q is %d characters; EventBridge allows %d", res.name, len(res.name), MaxRuleNameLength)
			}
			out.put(res.key, res.resource)
			summary.RuleKeys = append(summary.RuleKeys, res.key)

			if kind == schedule.TargetFunction && group.InvokePermission {
				permKey := naming.ReferenceKey(res.name + "-permission")
				out.put(permKey, resource.InvokePermission(group.FuncArn, res.key))
				summary.PermissionKeys = append(summary.PermissionKeys, permKey)
			}
		}
		out.Groups = append(out.Groups, summary)
	}
	return out, nil
}

func (c *Compiler) groupPrefix(group schedule.Group, index int) (string, error) {
	if group.Prefix != nil {
		return *group.Prefix, nil
	}
	return c.prefix.Render(naming.PrefixData{Service: c.service, Stage: c.stage, Index: index})
}

func (r *Result) put(key string, res resource.Resource) {
	if _, exists := r.Resources[key]; exists {
		r.Overwritten = append(r.Overwritten, key)
	}
	r.Resources[key] = res
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
