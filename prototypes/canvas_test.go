package prototypes

import (
	"strings"
	"testing"

	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/screens"
)

func TestCanvas(t *testing.T) {

	t.Run("frames and connector", func(t *testing.T) {
		list := []*screens.Screen{
			{
				Name:   "Home",
				ID:     "screen-home",
				Root:   true,
				Markup: `<a trigger-target="screen-next">go</a>`,
			},
			{
				Name:       "Next",
				ID:         "screen-next",
				GridColumn: 1,
				Order:      1,
			},
		}
		doc := Canvas(list, grids.Compact, "Test")

		if !strings.Contains(doc, "left: 120px; top: 80px") {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, "left: 678px; top: 80px") {
			t.Fatalf("got %s", doc)
		}
		// right edge of Home to left edge of Next
		if !strings.Contains(doc, `<line x1="558" y1="526" x2="678" y2="526"`) {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, `class="frame root"`) {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, "width: 1236px") {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("vertical connector", func(t *testing.T) {
		list := []*screens.Screen{
			{
				Name:   "Top",
				ID:     "screen-top",
				Markup: `<a href="#screen-bottom">down</a>`,
			},
			{
				Name:    "Bottom",
				ID:      "screen-bottom",
				GridRow: 1,
				Order:   1,
			},
		}
		doc := Canvas(list, grids.Compact, "Test")
		if !strings.Contains(doc, `<line x1="339" y1="972" x2="339" y2="1052"`) {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("negative cells normalized", func(t *testing.T) {
		list := []*screens.Screen{
			{Name: "Left", ID: "screen-left", GridColumn: -1},
			{Name: "Origin", ID: "screen-origin", Order: 1},
		}
		doc := Canvas(list, grids.Compact, "Test")
		if !strings.Contains(doc, "left: 120px; top: 80px") {
			t.Fatalf("got %s", doc)
		}
		if !strings.Contains(doc, "left: 678px; top: 80px") {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("dangling edge not drawn", func(t *testing.T) {
		list := []*screens.Screen{
			{
				Name:   "Home",
				ID:     "screen-home",
				Markup: `<a href="#screen-nowhere">x</a>`,
			},
		}
		doc := Canvas(list, grids.Compact, "Test")
		if strings.Contains(doc, "<line") {
			t.Fatalf("got %s", doc)
		}
	})

	t.Run("empty", func(t *testing.T) {
		doc := Canvas(nil, grids.Compact, "")
		if !strings.Contains(doc, "No screens yet.") {
			t.Fatalf("got %s", doc)
		}
	})

}
