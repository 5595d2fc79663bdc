// Where: internal/command/test_helpers_test.go
// What: Shared fixtures for command tests.
// Why: Keep project setup and prompt fakes consistent across tests.
package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/sws-schedules/internal/infra/interaction"
)

const testServerlessYAML = `
service: svc
provider:
  name: aws
  stage: prod
custom:
  sws:
    schedules:
      - queueArn: arn:aws:sqs:us-east-1:123456789012:tasks.fifo
        rules:
          - func: svc.tasks.sync
            expression: rate(5 minutes)
          - expression: rate(1 day)
`

const testTemplateJSON = `{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "TasksQueue": {
      "Type": "AWS::SQS::Queue"
    }
  }
}
`

// testProject lays out a service directory with a compiled template.
func testProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "serverless.yml"), testServerlessYAML)
	writeTestFile(t, filepath.Join(dir, ".serverless", "cloudformation-template-update-stack.json"), testTemplateJSON)
	return dir
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readResources(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode %s: %v\n%s", path, err, data)
	}
	resources, ok := doc["Resources"].(map[string]any)
	if !ok {
		t.Fatalf("missing Resources in %s", data)
	}
	return resources
}

func depsFor(dir string, out, errOut *bytes.Buffer) Dependencies {
	return Dependencies{
		Out:    out,
		ErrOut: errOut,
		Getwd:  func() (string, error) { return dir, nil },
	}
}

type fakePrompter struct {
	inputs      []string
	selections  []string
	inputCalls  int
	selectCalls int
	lastOptions []interaction.SelectOption
}

func (p *fakePrompter) Input(_ string, _ []string) (string, error) {
	value := ""
	if p.inputCalls < len(p.inputs) {
		value = p.inputs[p.inputCalls]
	}
	p.inputCalls++
	return value, nil
}

func (p *fakePrompter) SelectValue(_ string, options []interaction.SelectOption) (string, error) {
	p.lastOptions = options
	value := ""
	if p.selectCalls < len(p.selections) {
		value = p.selections[p.selectCalls]
	}
	p.selectCalls++
	return value, nil
}
