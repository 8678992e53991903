package bottombar

import (
	"strings"
	"testing"

	"tableflip.dev/horrorlist/pkg/runner/tea/internal/theme"
)

func TestViewSegments(t *testing.T) {
	m := New(theme.Default().Footer)
	if m.Mode() != ModeForm {
		t.Fatalf("expected form mode by default")
	}

	view, height := m.View()
	if height != 1 || !strings.Contains(view, "ctrl+s add") {
		t.Fatalf("unexpected form footer %q", view)
	}

	m.SetMode(ModeRating)
	m.SetFilter("Classic")
	m.SetStatus(`Added "Halloween"`)
	view, _ = m.View()
	for _, want := range []string{"enter save", "filter Classic", `Added "Halloween"`} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in footer %q", want, view)
		}
	}
	if strings.Contains(view, "ctrl+s add") {
		t.Fatalf("expected rating help to replace form help: %q", view)
	}
}
