package ui

import (
	"bytes"
	"testing"
)

func TestConsoleUIWithoutEmoji(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleUI(&buf, false)
	out.Success("done")
	out.Warn("careful")
	out.Block("🗓️", "Schedules", []KeyValue{{Key: "Rules", Value: 2}})
	out.List("🔁", "Replaced", nil)

	want := "[ok] done\n[warn] careful\n\nSchedules\n   Rules:               2\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestConsoleUIWithEmoji(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleUI(&buf, true)
	out.Success("done")
	out.List("🔁", "Replaced", []string{"a"})

	want := "✅ done\n\n🔁 Replaced\n   a\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}
