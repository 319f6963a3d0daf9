package prototypes

import (
	"strings"
	"testing"

	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/protocols"
	"github.com/reusee/pane/screens"
)

func TestAssemble(t *testing.T) {

	t.Run("end to end", func(t *testing.T) {
		result := protocols.Parse("<!-- PROJECT_NAME: Test -->\n" +
			"<!-- PROJECT_ICON: 🧪 -->\n" +
			"<!-- SCREEN_START: Home [0,0] [ROOT] -->\n" +
			"<div>Hi</div>\n" +
			"<!-- SCREEN_END -->")
		registry := screens.NewRegistry()
		registry.Rebuild(result)

		doc := Assemble(registry.All(), grids.Compact, result.Name)
		if !strings.Contains(doc, `<section class="screen active" id="screen-home"`) {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, "<div>Hi</div>") {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, "<title>Test</title>") {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, "width=390") {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		list := []*screens.Screen{
			{Name: "A", ID: "screen-a", Markup: "<p>a</p>"},
			{Name: "B", ID: "screen-b", Markup: "<p>b</p>", Order: 1},
		}
		if Assemble(list, grids.Compact, "X") != Assemble(list, grids.Compact, "X") {
			t.Fatal("output differs between runs")
		}
	})

	t.Run("first screen active without root", func(t *testing.T) {
		list := []*screens.Screen{
			{Name: "A", ID: "screen-a"},
			{Name: "B", ID: "screen-b", Order: 1},
		}
		doc := Assemble(list, grids.Compact, "X")
		if !strings.Contains(doc, `<section class="screen active" id="screen-a"`) {
			t.Fatalf("got %s", doc)
		}
		if strings.Contains(doc, `<section class="screen active" id="screen-b"`) {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("root screen active", func(t *testing.T) {
		list := []*screens.Screen{
			{Name: "A", ID: "screen-a"},
			{Name: "B", ID: "screen-b", Root: true, Order: 1},
		}
		doc := Assemble(list, grids.Compact, "X")
		if !strings.Contains(doc, `<section class="screen active" id="screen-b"`) {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("markup verbatim", func(t *testing.T) {
		markup := `<a href="#screen-next">Go</a> & <b class='x'>bold</b>`
		list := []*screens.Screen{
			{Name: "A", ID: "screen-a", Markup: markup},
		}
		doc := Assemble(list, grids.Compact, "X")
		if !strings.Contains(doc, markup) {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("hotspot control wired", func(t *testing.T) {
		list := []*screens.Screen{
			{Name: "A", ID: "screen-a"},
		}
		doc := Assemble(list, grids.Compact, "X")
		if !strings.Contains(doc, "pane:hotspots") {
			t.Fatal("no hotspot control")
		}
		if !strings.Contains(doc, "trigger-target") {
			t.Fatal("no trigger interception")
		}
	})

	t.Run("empty placeholder", func(t *testing.T) {
		doc := Assemble(nil, grids.Compact, "")
		if !strings.Contains(doc, "No screens yet.") {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, "<title>Untitled</title>") {
			t.Fatalf("got %s", doc)
		}
		if strings.Contains(doc, "screen active") {
			t.Fatalf("got %s", doc)
		}
	})

}
