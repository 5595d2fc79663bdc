// Where: internal/domain/compiler/resolver.go
// What: Rule to event-rule resolution.
// Why: Keep naming, envelope and target assembly identical for every binding.
package compiler

import (
	"github.com/poruru/sws-schedules/internal/domain/naming"
	"github.com/poruru/sws-schedules/internal/domain/resource"
	"github.com/poruru/sws-schedules/internal/domain/schedule"
)

// addressing is computed once per group and shared by its rules.
type addressing struct {
	prefix  string
	binding Binding
}

type resolved struct {
	key      string
	name     string
	resource resource.Resource
}

func resolve(rule schedule.Normalized, addr addressing) (resolved, error) {
	payloadID, err := naming.PayloadID(rule.Expression, rule.Payload)
	if err != nil {
		return resolved{}, err
	}
	name := naming.Name(addr.prefix, payloadID)
	input, err := schedule.NewEnvelope(addr.binding.Integration(), rule.Payload).Encode()
	if err != nil {
		return resolved{}, err
	}

	props := resource.RuleProperties{
		Description:        rule.Description,
		Name:               name,
		ScheduleExpression: rule.Expression,
		RoleArn:            addr.binding.RoleArn(),
		State:              resource.State(rule.Enabled),
		Targets:            []resource.Target{addr.binding.Target(naming.GroupID(name), input)},
	}
	return resolved{
		key:      naming.ReferenceKey(name),
		name:     name,
		resource: resource.EventRule(props),
	}, nil
}
