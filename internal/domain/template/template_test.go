// Where: internal/domain/template/template_test.go
// What: Tests for the merge step and history helpers.
// Why: Merging must be additive and repeatable.
package template

import (
	"reflect"
	"testing"

	"github.com/poruru/sws-schedules/internal/domain/resource"
)

func TestResourcesCreatesCollection(t *testing.T) {
	doc := Document{"AWSTemplateFormatVersion": "2010-09-09"}
	resources, err := doc.Resources()
	if err != nil {
		t.Fatalf("resources: %v", err)
	}
	resources["X"] = "y"
	if got := doc["Resources"].(map[string]any)["X"]; got != "y" {
		t.Fatalf("collection not attached to document: %#v", doc)
	}
}

func TestResourcesRejectsNonMapping(t *testing.T) {
	doc := Document{"Resources": []any{"x"}}
	if _, err := doc.Resources(); err == nil {
		t.Fatalf("expected error for list Resources")
	}
}

func TestMergeIsAdditive(t *testing.T) {
	existing := map[string]any{"Type": "AWS::SQS::Queue"}
	doc := Document{"Resources": map[string]any{
		"Queue":       existing,
		"svcDev0Role": map[string]any{"Type": "stale"},
	}}
	generated := resource.Map{
		"svcDev0Role":       resource.Role("svc-dev-0-role", nil),
		"svcDev0RolePolicy": resource.Policy("arn", "svcDev0Role"),
	}

	report, err := Merge(doc, generated)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	want := MergeReport{Added: []string{"svcDev0RolePolicy"}, Replaced: []string{"svcDev0Role"}}
	if !reflect.DeepEqual(report, want) {
		t.Fatalf("unexpected report %#v", report)
	}

	resources := doc["Resources"].(map[string]any)
	if !reflect.DeepEqual(resources["Queue"], existing) {
		t.Fatalf("unrelated resource changed: %#v", resources["Queue"])
	}
	role := resources["svcDev0Role"].(map[string]any)
	if role["Type"] != resource.TypeRole {
		t.Fatalf("role not replaced: %#v", role)
	}
	if len(resources) != 3 {
		t.Fatalf("unexpected resource count %d", len(resources))
	}
}

func TestMergeTwiceIsStable(t *testing.T) {
	generated := resource.Map{"r": resource.Role("r", nil)}
	doc := Document{}
	if _, err := Merge(doc, generated); err != nil {
		t.Fatalf("merge: %v", err)
	}
	first := doc["Resources"].(map[string]any)["r"]
	report, err := Merge(doc, generated)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(report.Added) != 0 || !reflect.DeepEqual(report.Replaced, []string{"r"}) {
		t.Fatalf("unexpected report %#v", report)
	}
	if !reflect.DeepEqual(first, doc["Resources"].(map[string]any)["r"]) {
		t.Fatalf("second merge changed the resource")
	}
}

func TestBuildSuggestions(t *testing.T) {
	got := BuildSuggestions(" a.json ", []string{"b.json", "a.json", ""}, []string{"c.yml", "b.json"})
	want := []string{"a.json", "b.json", "c.yml"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestUpdateHistory(t *testing.T) {
	got := UpdateHistory([]string{"a", "b", "c"}, "b", 2)
	if !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("unexpected history %v", got)
	}
	if got := UpdateHistory([]string{"a"}, "  ", 2); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("blank path must keep history, got %v", got)
	}
}
