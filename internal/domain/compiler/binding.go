// Where: internal/domain/compiler/binding.go
// What: Delivery bindings for the two target shapes.
// Why: One resolver covers both shapes; bindings carry only what differs.
package compiler

import (
	"github.com/poruru/sws-schedules/internal/domain/resource"
	"github.com/poruru/sws-schedules/internal/domain/schedule"
)

// Binding describes how a rule reaches its target.
type Binding interface {
	// Integration is the envelope tag the worker dispatches on.
	Integration() string
	// Target builds the rule target for a rule name's group id and input.
	Target(groupID, input string) resource.Target
	// RoleArn is the role the scheduler assumes, or nil.
	RoleArn() any
}

// QueueBinding delivers through a FIFO queue using a generated role.
type QueueBinding struct {
	QueueArn any
	RoleRef  string
}

func (b QueueBinding) Integration() string {
	return schedule.IntegrationQueue
}

func (b QueueBinding) Target(groupID, input string) resource.Target {
	return resource.Target{
		ID:            groupID + "-sqs",
		Arn:           b.QueueArn,
		SqsParameters: &resource.SqsParameters{MessageGroupID: groupID},
		Input:         input,
	}
}

func (b QueueBinding) RoleArn() any {
	return resource.GetAtt(b.RoleRef, "Arn")
}

// FunctionBinding invokes a function directly.
type FunctionBinding struct {
	FunctionArn any
}

func (b FunctionBinding) Integration() string {
	return schedule.IntegrationFunction
}

func (b FunctionBinding) Target(groupID, input string) resource.Target {
	return resource.Target{
		ID:    groupID + "-lambda",
		Arn:   b.FunctionArn,
		Input: input,
	}
}

func (b FunctionBinding) RoleArn() any {
	return nil
}
