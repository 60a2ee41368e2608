package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/handtris/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	got := RenderScreen(s)
	if got != "hello\nworld" {
		t.Errorf("RenderScreen() = %q", got)
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColor(0, 0, "ab", core.Color("#ff0000"))
	s.DrawTextColor(2, 0, "cd", core.Color("#00ff00"))

	got := RenderScreen(s)
	if !strings.Contains(got, "ab") || !strings.Contains(got, "cd") {
		t.Errorf("RenderScreen() lost text: %q", got)
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("single row rendered with newlines: %q", got)
	}
}

func TestStyleForCaches(t *testing.T) {
	c := core.Color("#123456cc")
	styleFor(c)

	styleMu.RLock()
	_, ok := styles[c]
	styleMu.RUnlock()
	if !ok {
		t.Error("style was not cached")
	}
}
