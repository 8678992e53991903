package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRegistersCommands(t *testing.T) {
	root := New()
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	want := []string{"categories", "completion", "demo", "ui", "version"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}

	ui, _, err := root.Find([]string{"ui"})
	if err != nil {
		t.Fatalf("find ui: %v", err)
	}
	for _, flag := range []string{"seed", "no-audio", "filter"} {
		if ui.Flags().Lookup(flag) == nil {
			t.Fatalf("expected ui flag --%s", flag)
		}
	}

	demo, _, err := root.Find([]string{"demo"})
	if err != nil {
		t.Fatalf("find demo: %v", err)
	}
	for _, flag := range []string{"json", "show-id"} {
		if demo.Flags().Lookup(flag) == nil {
			t.Fatalf("expected demo flag --%s", flag)
		}
	}
}

func TestCategoryCompletions(t *testing.T) {
	if diff := cmp.Diff([]string{"classic"}, categoryCompletions("Cl")); diff != "" {
		t.Fatalf("completions mismatch (-want +got):\n%s", diff)
	}
	if got := categoryCompletions(""); len(got) != 3 {
		t.Fatalf("expected all categories, got %v", got)
	}
}
