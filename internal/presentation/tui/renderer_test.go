package tui

import (
	"strings"
	"testing"
)

func TestNewRendererRendersMarkdown(t *testing.T) {
	render, err := NewRenderer(40)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	out, err := render("# Frames\n\nICRS is a barycentric equatorial frame.")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Frames") || !strings.Contains(out, "ICRS") {
		t.Errorf("render output missing content: %q", out)
	}
}

func TestNewRendererDefaultWidth(t *testing.T) {
	if _, err := NewRenderer(0); err != nil {
		t.Fatalf("NewRenderer without width: %v", err)
	}
}
