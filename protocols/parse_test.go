package protocols

import (
	"reflect"
	"testing"

	"github.com/reusee/pane/grids"
)

func TestParseScenario(t *testing.T) {
	buffer := "<!-- PROJECT_NAME: Test -->\n" +
		"<!-- PROJECT_ICON: 🧪 -->\n" +
		"<!-- SCREEN_START: Home [0,0] [ROOT] -->\n" +
		"<div>Hi</div>\n" +
		"<!-- SCREEN_END -->"
	result := Parse(buffer)

	if result.Name != "Test" {
		t.Fatalf("got %q", result.Name)
	}
	if result.Icon != "🧪" {
		t.Fatalf("got %q", result.Icon)
	}
	if len(result.Anomalies) != 0 {
		t.Fatalf("got %+v", result.Anomalies)
	}
	if result.Tail != "" {
		t.Fatalf("got %q", result.Tail)
	}
	want := []Screen{
		{
			Name:   "Home",
			ID:     "screen-home",
			Markup: "\n<div>Hi</div>\n",
			Root:   true,
		},
	}
	if !reflect.DeepEqual(result.Screens, want) {
		t.Fatalf("got %+v", result.Screens)
	}
}

func TestParse(t *testing.T) {

	t.Run("edit preserves position and order", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: Alpha [1,2] -->old<!-- SCREEN_END -->" +
			"<!-- SCREEN_START: Beta [3,4] -->b<!-- SCREEN_END -->" +
			"<!-- SCREEN_EDIT: Alpha -->new<!-- SCREEN_END -->")
		if len(result.Screens) != 2 {
			t.Fatalf("got %+v", result.Screens)
		}
		alpha := result.Screens[0]
		if alpha.Markup != "new" {
			t.Fatalf("got %q", alpha.Markup)
		}
		if alpha.Cell != (grids.Cell{Column: 1, Row: 2}) {
			t.Fatalf("got %+v", alpha.Cell)
		}
		if len(result.Anomalies) != 0 {
			t.Fatalf("got %+v", result.Anomalies)
		}
	})

	t.Run("root last wins", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: A [0,0] [ROOT] --><!-- SCREEN_END -->" +
			"<!-- SCREEN_START: B [1,0] [ROOT] --><!-- SCREEN_END -->")
		if result.Screens[0].Root {
			t.Fatal("first screen still root")
		}
		if !result.Screens[1].Root {
			t.Fatal("second screen not root")
		}
	})

	t.Run("edit of unknown screen creates it", func(t *testing.T) {
		result := Parse("<!-- SCREEN_EDIT: Ghost -->boo<!-- SCREEN_END -->")
		if len(result.Screens) != 1 {
			t.Fatalf("got %+v", result.Screens)
		}
		screen := result.Screens[0]
		if screen.ID != "screen-ghost" {
			t.Fatalf("got %q", screen.ID)
		}
		if screen.Cell != (grids.Cell{}) {
			t.Fatalf("got %+v", screen.Cell)
		}
		if screen.Markup != "boo" {
			t.Fatalf("got %q", screen.Markup)
		}
		want := []Anomaly{
			{
				Kind:   AnomalyEditUnknownScreen,
				Screen: "Ghost",
			},
		}
		if !reflect.DeepEqual(result.Anomalies, want) {
			t.Fatalf("got %+v", result.Anomalies)
		}
	})

	t.Run("edit with position strips it", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: Home [1,1] -->a<!-- SCREEN_END -->" +
			"<!-- SCREEN_EDIT: Home [5,5] -->b<!-- SCREEN_END -->")
		screen := result.Screens[0]
		if screen.Cell != (grids.Cell{Column: 1, Row: 1}) {
			t.Fatalf("got %+v", screen.Cell)
		}
		if screen.Markup != "b" {
			t.Fatalf("got %q", screen.Markup)
		}
		if len(result.Anomalies) != 1 || result.Anomalies[0].Kind != AnomalyEditWithPosition {
			t.Fatalf("got %+v", result.Anomalies)
		}
	})

	t.Run("redeclared name is an edit", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: Home [1,1] -->a<!-- SCREEN_END -->" +
			"<!-- SCREEN_START: Home -->b<!-- SCREEN_END -->")
		if len(result.Screens) != 1 {
			t.Fatalf("got %+v", result.Screens)
		}
		screen := result.Screens[0]
		if screen.Markup != "b" {
			t.Fatalf("got %q", screen.Markup)
		}
		// the second declaration has no cell, the first position holds
		if screen.Cell != (grids.Cell{Column: 1, Row: 1}) {
			t.Fatalf("got %+v", screen.Cell)
		}
		if len(result.Anomalies) != 0 {
			t.Fatalf("got %+v", result.Anomalies)
		}
	})

	t.Run("colliding names report and adopt", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: Home -->a<!-- SCREEN_END -->" +
			"<!-- SCREEN_START: Home!! -->b<!-- SCREEN_END -->")
		if len(result.Screens) != 1 {
			t.Fatalf("got %+v", result.Screens)
		}
		if result.Screens[0].Name != "Home!!" {
			t.Fatalf("got %q", result.Screens[0].Name)
		}
		if len(result.Anomalies) != 1 || result.Anomalies[0].Kind != AnomalyIDCollision {
			t.Fatalf("got %+v", result.Anomalies)
		}
	})

	t.Run("start while open closes implicitly", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: A -->aaa" +
			"<!-- SCREEN_START: B -->bbb<!-- SCREEN_END -->")
		if len(result.Screens) != 2 {
			t.Fatalf("got %+v", result.Screens)
		}
		if result.Screens[0].Open {
			t.Fatal("first screen still open")
		}
		if result.Screens[0].Markup != "aaa" {
			t.Fatalf("got %q", result.Screens[0].Markup)
		}
		want := []Anomaly{
			{
				Kind:   AnomalyUnterminatedScreen,
				Screen: "A",
			},
		}
		if !reflect.DeepEqual(result.Anomalies, want) {
			t.Fatalf("got %+v", result.Anomalies)
		}
	})

	t.Run("end with none open is ignored", func(t *testing.T) {
		result := Parse("<!-- SCREEN_END --><!-- SCREEN_END -->")
		if len(result.Screens) != 0 {
			t.Fatalf("got %+v", result.Screens)
		}
		if len(result.Anomalies) != 0 {
			t.Fatalf("got %+v", result.Anomalies)
		}
	})

	t.Run("narration dropped, messages collected", func(t *testing.T) {
		result := Parse("I will start with the home screen.\n" +
			"<!-- MESSAGE: Here is the first draft. -->\n" +
			"<!-- SCREEN_START: Home -->hi<!-- SCREEN_END -->\n" +
			"closing thoughts")
		want := []string{"Here is the first draft."}
		if !reflect.DeepEqual(result.Messages, want) {
			t.Fatalf("got %+v", result.Messages)
		}
		if result.Screens[0].Markup != "hi" {
			t.Fatalf("got %q", result.Screens[0].Markup)
		}
	})

	t.Run("open screen keeps provisional markup", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: Home -->still stream")
		screen := result.Screens[0]
		if !screen.Open {
			t.Fatal("not open")
		}
		if screen.Markup != "still stream" {
			t.Fatalf("got %q", screen.Markup)
		}
	})

	t.Run("ordinary comments stay in markup", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: Home --><p><!-- hero --></p><!-- SCREEN_END -->")
		if result.Screens[0].Markup != "<p><!-- hero --></p>" {
			t.Fatalf("got %q", result.Screens[0].Markup)
		}
	})

	t.Run("last project name wins", func(t *testing.T) {
		result := Parse("<!-- PROJECT_NAME: Draft --><!-- PROJECT_NAME: Final -->")
		if result.Name != "Final" {
			t.Fatalf("got %q", result.Name)
		}
	})

	t.Run("by id", func(t *testing.T) {
		result := Parse("<!-- SCREEN_START: Home -->hi<!-- SCREEN_END -->")
		if screen := result.ByID("screen-home"); screen == nil || screen.Name != "Home" {
			t.Fatalf("got %+v", screen)
		}
		if screen := result.ByID("screen-missing"); screen != nil {
			t.Fatalf("got %+v", screen)
		}
	})

}
