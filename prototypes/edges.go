package prototypes

import (
	"regexp"

	"github.com/reusee/pane/screens"
)

// Edge is one navigation hop between screens, derived from markup on
// demand and never stored.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

var (
	triggerTargetPattern = regexp.MustCompile(`trigger-target\s*=\s*["']([^"']+)["']`)
	anchorHrefPattern    = regexp.MustCompile(`href\s*=\s*["']#([^"']+)["']`)
)

// NavigationEdges scans every screen's markup for the two trigger
// conventions, the trigger-target attribute and same-document
// anchors, and returns the hops in scan order, deduplicated. Targets
// are reported whether or not a screen with that id exists: dangling
// edges are the caller's signal, not an error.
func NavigationEdges(list []*screens.Screen) []Edge {
	var edges []Edge
	seen := make(map[Edge]bool)
	add := func(from, to string) {
		edge := Edge{
			From: from,
			To:   to,
		}
		if seen[edge] {
			return
		}
		seen[edge] = true
		edges = append(edges, edge)
	}
	for _, screen := range list {
		for _, m := range triggerTargetPattern.FindAllStringSubmatch(screen.Markup, -1) {
			add(screen.ID, m[1])
		}
		for _, m := range anchorHrefPattern.FindAllStringSubmatch(screen.Markup, -1) {
			add(screen.ID, m[1])
		}
	}
	return edges
}
