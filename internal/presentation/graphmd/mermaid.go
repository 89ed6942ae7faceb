package graphmd

import (
	"fmt"
	"strings"

	"github.com/mkleist/astrolabe/pkg/transform"
)

// Overlay contains highlighting data to visualize on the graph.
type Overlay struct {
	// Route is a frame path to emphasize, e.g. the hops of a transform.
	Route []string
}

// GenerateMermaid produces a Mermaid flowchart from a transform graph.
// Frames render as circles; edges carry the operator kind as a label, with
// lazily parameterized operators drawn dotted. Overlay routes get a
// highlight class.
func GenerateMermaid(g *transform.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, name := range g.Frames() {
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", sanitizeMermaidID(name), name))
	}

	for _, e := range g.Edges() {
		arrow := fmt.Sprintf("-- \"%s\" -->", e.Kind)
		if e.Kind != "static" {
			// Parameters resolved at transform time
			arrow = fmt.Sprintf("-. \"%s\" .->", e.Kind)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(e.Src), arrow, sanitizeMermaidID(e.Dst)))
	}

	if overlay != nil && len(overlay.Route) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef route fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		seen := make(map[string]bool)
		for _, name := range overlay.Route {
			safeID := sanitizeMermaidID(name)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s route;\n", safeID))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
