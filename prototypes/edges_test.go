package prototypes

import (
	"reflect"
	"testing"

	"github.com/reusee/pane/screens"
)

func TestNavigationEdges(t *testing.T) {

	t.Run("both conventions", func(t *testing.T) {
		list := []*screens.Screen{
			{
				ID: "screen-home",
				Markup: `<button trigger-target="screen-settings">Settings</button>` +
					`<a href="#screen-profile">Profile</a>`,
			},
			{
				ID:     "screen-settings",
				Markup: `<div trigger-target='screen-home'>Back</div>`,
			},
		}
		want := []Edge{
			{From: "screen-home", To: "screen-settings"},
			{From: "screen-home", To: "screen-profile"},
			{From: "screen-settings", To: "screen-home"},
		}
		if got := NavigationEdges(list); !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("deduplicated", func(t *testing.T) {
		list := []*screens.Screen{
			{
				ID: "screen-a",
				Markup: `<a href="#screen-b">one</a>` +
					`<a href="#screen-b">two</a>` +
					`<span trigger-target="screen-b">three</span>`,
			},
		}
		want := []Edge{
			{From: "screen-a", To: "screen-b"},
		}
		if got := NavigationEdges(list); !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("external links ignored", func(t *testing.T) {
		list := []*screens.Screen{
			{
				ID:     "screen-a",
				Markup: `<a href="https://example.com">out</a><a href="#">top</a>`,
			},
		}
		if got := NavigationEdges(list); got != nil {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("dangling targets reported", func(t *testing.T) {
		list := []*screens.Screen{
			{
				ID:     "screen-a",
				Markup: `<a href="#screen-nowhere">x</a>`,
			},
		}
		want := []Edge{
			{From: "screen-a", To: "screen-nowhere"},
		}
		if got := NavigationEdges(list); !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v", got)
		}
	})

}
