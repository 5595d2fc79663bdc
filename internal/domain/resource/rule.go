// Where: internal/domain/resource/rule.go
// What: EventBridge rule declarations.
package resource

const (
	StateEnabled  = "ENABLED"
	StateDisabled = "DISABLED"
)

// RuleProperties are the properties of an AWS::Events::Rule.
type RuleProperties struct {
	Description        string   `json:"Description"`
	Name               string   `json:"Name"`
	ScheduleExpression string   `json:"ScheduleExpression"`
	RoleArn            any      `json:"RoleArn,omitempty"`
	State              string   `json:"State"`
	Targets            []Target `json:"Targets"`
}

// Target is one event rule target.
type Target struct {
	ID            string         `json:"Id"`
	Arn           any            `json:"Arn"`
	SqsParameters *SqsParameters `json:"SqsParameters,omitempty"`
	Input         string         `json:"Input"`
}

// SqsParameters carries FIFO message grouping for queue targets.
type SqsParameters struct {
	MessageGroupID string `json:"MessageGroupId"`
}

// State maps an enabled flag to a rule state.
func State(enabled bool) string {
	if enabled {
		return StateEnabled
	}
	return StateDisabled
}

// EventRule wraps rule properties into a resource.
func EventRule(props RuleProperties) Resource {
	return Resource{Type: TypeEventRule, Properties: props}
}
