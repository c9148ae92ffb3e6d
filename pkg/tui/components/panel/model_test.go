package panel

import (
	"strings"
	"testing"

	"tableflip.dev/rangepick/pkg/tui/theme"
)

func TestViewFramesContent(t *testing.T) {
	p := New(theme.Default().Panel)
	if view, h := p.View(); view != "" || h != 0 {
		t.Fatalf("empty panel should render nothing, got %q", view)
	}

	p.SetContent("Presets", []string{"alt+1 last week", "alt+2 last month"})
	view, h := p.View()
	for _, want := range []string{"Presets", "alt+1 last week", "alt+2 last month"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in:\n%s", want, view)
		}
	}
	// title, two lines and the rounded border
	if h != 5 {
		t.Fatalf("height = %d, want 5", h)
	}
}
