// Where: internal/domain/naming/naming_test.go
// What: Tests for payload ids, names, group ids and reference keys.
// Why: Generated names must be stable across runs and distinct across rules.
package naming

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/poruru/sws-schedules/internal/domain/schedule"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestPayloadIDHashesCanonicalBody(t *testing.T) {
	payload := schedule.Payload{TaskPath: "a.b.c", Args: []any{}, Kwargs: map[string]any{}}
	got, err := PayloadID("rate(5 minutes)", payload)
	if err != nil {
		t.Fatalf("PayloadID: %v", err)
	}
	want := md5Hex(`{"expression":"rate(5 minutes)","task_path":"a.b.c","args":[],"kwargs":{}}`)
	if got != want {
		t.Fatalf("PayloadID = %s, want %s", got, want)
	}
}

func TestPayloadIDIsStable(t *testing.T) {
	payload := schedule.Payload{
		TaskPath: "jobs.sync",
		Args:     []any{"a", 2},
		Kwargs:   map[string]any{"b": 1, "a": map[string]any{"y": 1, "x": 2}},
	}
	first, err := PayloadID("rate(1 hour)", payload)
	if err != nil {
		t.Fatalf("PayloadID: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := PayloadID("rate(1 hour)", payload)
		if err != nil {
			t.Fatalf("PayloadID: %v", err)
		}
		if again != first {
			t.Fatalf("PayloadID changed between runs: %s vs %s", first, again)
		}
	}
}

func TestPayloadIDDistinguishesNearDuplicates(t *testing.T) {
	base := schedule.Payload{TaskPath: "a.b.c", Args: []any{1}, Kwargs: map[string]any{"k": "v"}}
	variants := []struct {
		name       string
		expression string
		payload    schedule.Payload
	}{
		{"base", "rate(5 minutes)", base},
		{"expression", "rate(6 minutes)", base},
		{"func", "rate(5 minutes)", schedule.Payload{TaskPath: "a.b.d", Args: base.Args, Kwargs: base.Kwargs}},
		{"args", "rate(5 minutes)", schedule.Payload{TaskPath: "a.b.c", Args: []any{2}, Kwargs: base.Kwargs}},
		{"args type", "rate(5 minutes)", schedule.Payload{TaskPath: "a.b.c", Args: []any{"1"}, Kwargs: base.Kwargs}},
		{"kwargs value", "rate(5 minutes)", schedule.Payload{TaskPath: "a.b.c", Args: base.Args, Kwargs: map[string]any{"k": "w"}}},
		{"kwargs key", "rate(5 minutes)", schedule.Payload{TaskPath: "a.b.c", Args: base.Args, Kwargs: map[string]any{"j": "v"}}},
	}

	seen := map[string]string{}
	for _, v := range variants {
		id, err := PayloadID(v.expression, v.payload)
		if err != nil {
			t.Fatalf("%s: PayloadID: %v", v.name, err)
		}
		if other, ok := seen[id]; ok {
			t.Fatalf("%s collides with %s (%s)", v.name, other, id)
		}
		seen[id] = v.name
	}
}

func TestName(t *testing.T) {
	if got := Name("", "abc"); got != "abc" {
		t.Errorf("Name(empty) = %s", got)
	}
	if got := Name("svc-dev-0", "abc"); got != "svc-dev-0-abc" {
		t.Errorf("Name(prefix) = %s", got)
	}
}

func TestGroupID(t *testing.T) {
	if got, want := GroupID("svc-dev-0-abc"), md5Hex("svc-dev-0-abc"); got != want {
		t.Fatalf("GroupID = %s, want %s", got, want)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"svc-dev-0-role", "svcDev0Role"},
		{"svc-dev-0-role-policy", "svcDev0RolePolicy"},
		{"my_service-prod-sws-schedule-1-role", "myServiceProdSwsSchedule1Role"},
		{"fooBar", "fooBar"},
		{"Foo Bar", "fooBar"},
		{"__FOO_BAR__", "fooBar"},
		{"XMLHttpRequest", "xmlHttpRequest"},
		{"ABC1", "abc1"},
		{"svc-dev-0-5d41402abc", "svcDev05D41402Abc"},
		{"1st-place", "1stPlace"},
		{"café-dev", "cafeDev"},
		{"it's-svc", "itsSvc"},
		{"it’s-svc", "itsSvc"},
		{"Ünïcode-x", "unicodeX"},
		{"Æsir-straße", "aesirStrasse"},
		{"cafe\u0301-dev", "cafeDev"},
		{"Łódź-ŉ", "lodzN"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CamelCase(tt.in); got != tt.want {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReferenceKeyIsAlphanumeric(t *testing.T) {
	payload := schedule.Payload{TaskPath: "a.b.c", Args: []any{}, Kwargs: map[string]any{}}
	id, err := PayloadID("rate(5 minutes)", payload)
	if err != nil {
		t.Fatalf("PayloadID: %v", err)
	}
	key := ReferenceKey(Name("svc-dev-0", id))
	for _, r := range key {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			t.Fatalf("reference key %q contains %q", key, r)
		}
	}
	if key != ReferenceKey(Name("svc-dev-0", id)) {
		t.Fatalf("reference key is not deterministic")
	}

	for _, prefix := range []string{"crème-brûlée-0", "Œuvre-Ĳssel-1", "o’brien-dev-2"} {
		key := ReferenceKey(prefix + "-role")
		for _, r := range key {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				t.Fatalf("reference key %q for %q contains %q", key, prefix, r)
			}
		}
	}
}

func TestPrefixRendererDefault(t *testing.T) {
	r, err := NewPrefixRenderer("")
	if err != nil {
		t.Fatalf("NewPrefixRenderer: %v", err)
	}
	if r.Text() != DefaultPrefixTemplate {
		t.Fatalf("Text() = %q", r.Text())
	}
	got, err := r.Render(PrefixData{Service: "svc", Stage: "dev", Index: 2})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "svc-dev-sws-schedule-2" {
		t.Fatalf("Render = %q", got)
	}
}

func TestPrefixRendererSprig(t *testing.T) {
	r, err := NewPrefixRenderer(`{{ .Service | upper }}-{{ .Stage | trunc 3 }}-{{ add .Index 1 }}`)
	if err != nil {
		t.Fatalf("NewPrefixRenderer: %v", err)
	}
	got, err := r.Render(PrefixData{Service: "svc", Stage: "production", Index: 0})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "SVC-pro-1" {
		t.Fatalf("Render = %q", got)
	}
}

func TestPrefixRendererErrors(t *testing.T) {
	if _, err := NewPrefixRenderer("{{ .Service "); err == nil {
		t.Fatal("expected parse error")
	}

	r, err := NewPrefixRenderer(`{{ if false }}x{{ end }}`)
	if err != nil {
		t.Fatalf("NewPrefixRenderer: %v", err)
	}
	if _, err := r.Render(PrefixData{}); err == nil {
		t.Fatal("expected empty prefix error")
	}

	r, err = NewPrefixRenderer(`{{ .Region }}`)
	if err != nil {
		t.Fatalf("NewPrefixRenderer: %v", err)
	}
	if _, err := r.Render(PrefixData{}); err == nil {
		t.Fatal("expected unknown field error")
	}
}
