// Where: internal/infra/service/arn.go
// What: Sanity checks for literal queue and function addresses.
// Why: A mistyped ARN only fails at deploy time; surface it while generating.
package service

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws/arn"

	"github.com/poruru/sws-schedules/internal/domain/schedule"
)

func addressWarnings(groups []schedule.Group) []string {
	var warnings []string
	for index, group := range groups {
		if w := checkAddress(index, "queueArn", group.QueueArn, "sqs"); w != "" {
			warnings = append(warnings, w)
		}
		if w := checkAddress(index, "funcArn", group.FuncArn, "lambda"); w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// checkAddress inspects literal strings only; intrinsics and variables are
// resolved later by the deployment tool.
func checkAddress(index int, field string, raw any, service string) string {
	text, ok := raw.(string)
	if !ok || text == "" || isVariable(text) {
		return ""
	}
	if !arn.IsARN(text) {
		return fmt.Sprintf("schedule group %d: %s %q is not an ARN", index, field, text)
	}
	parsed, err := arn.Parse(text)
	if err != nil {
		return fmt.Sprintf("schedule group %d: %s %q: %v", index, field, text, err)
	}
	if parsed.Service != service {
		return fmt.Sprintf("schedule group %d: %s %q names service %q, expected %q", index, field, text, parsed.Service, service)
	}
	return ""
}
