package panel

import (
	"strings"
	"testing"

	"tableflip.dev/horrorlist/pkg/runner/tea/internal/theme"
)

func TestViewIncludesTitleAndLines(t *testing.T) {
	m := New(theme.Default().Modal)
	m.SetContent("Rate Halloween", []string{"Rating (0 to 10)", "> 5"})

	view, height := m.View()
	for _, want := range []string{"Rate Halloween", "Rating (0 to 10)", "> 5"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in panel:\n%s", want, view)
		}
	}
	if height < 3 {
		t.Fatalf("expected at least three lines, got %d", height)
	}

	m.Reset()
	view, _ = m.View()
	if strings.Contains(view, "Rate Halloween") {
		t.Fatalf("expected reset to clear content:\n%s", view)
	}
}
