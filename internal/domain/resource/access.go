// Where: internal/domain/resource/access.go
// What: IAM role, queue policy and invoke permission declarations.
// Why: Queue-delivered schedules need a role the scheduler can assume to send messages.
package resource

const (
	policyVersion = "2012-10-17"
	sqsPolicyName = "SQSPolicy"

	principalEvents = "events.amazonaws.com"
	principalSQS    = "sqs.amazonaws.com"
)

// PolicyDocument is an IAM policy document.
type PolicyDocument struct {
	Statement []Statement `json:"Statement"`
	Version   string      `json:"Version"`
}

// Statement is one IAM policy statement.
type Statement struct {
	Action    any    `json:"Action"`
	Effect    string `json:"Effect"`
	Principal any    `json:"Principal,omitempty"`
	Resource  any    `json:"Resource,omitempty"`
}

// RoleProperties are the properties of an AWS::IAM::Role.
type RoleProperties struct {
	RoleName                 string         `json:"RoleName"`
	AssumeRolePolicyDocument PolicyDocument `json:"AssumeRolePolicyDocument"`
	Tags                     []any          `json:"Tags"`
}

// PolicyProperties are the properties of an AWS::IAM::Policy.
type PolicyProperties struct {
	PolicyDocument PolicyDocument `json:"PolicyDocument"`
	PolicyName     string         `json:"PolicyName"`
	Roles          []any          `json:"Roles"`
}

// PermissionProperties are the properties of an AWS::Lambda::Permission.
type PermissionProperties struct {
	Action       string `json:"Action"`
	FunctionName any    `json:"FunctionName"`
	Principal    string `json:"Principal"`
	SourceArn    any    `json:"SourceArn"`
}

// Role declares the role assumed by the scheduler and the queue service.
func Role(roleName string, tags []any) Resource {
	if tags == nil {
		tags = []any{}
	}
	return Resource{
		Type: TypeRole,
		Properties: RoleProperties{
			RoleName: roleName,
			AssumeRolePolicyDocument: PolicyDocument{
				Statement: []Statement{{
					Action: "sts:AssumeRole",
					Effect: "Allow",
					Principal: map[string]any{
						"Service": []any{principalEvents, principalSQS},
					},
				}},
				Version: policyVersion,
			},
			Tags: tags,
		},
	}
}

// Policy grants every queue action on exactly one queue to the referenced role.
func Policy(queueArn any, roleRef string) Resource {
	return Resource{
		Type: TypePolicy,
		Properties: PolicyProperties{
			PolicyDocument: PolicyDocument{
				Statement: []Statement{{
					Action:   "sqs:*",
					Effect:   "Allow",
					Resource: queueArn,
				}},
				Version: policyVersion,
			},
			PolicyName: sqsPolicyName,
			Roles:      []any{Ref(roleRef)},
		},
	}
}

// InvokePermission lets the referenced event rule invoke a function.
func InvokePermission(functionArn any, ruleRef string) Resource {
	return Resource{
		Type: TypePermission,
		Properties: PermissionProperties{
			Action:       "lambda:InvokeFunction",
			FunctionName: functionArn,
			Principal:    principalEvents,
			SourceArn:    GetAtt(ruleRef, "Arn"),
		},
	}
}
