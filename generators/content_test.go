package generators

import (
	"reflect"
	"testing"
)

func TestContentMerge(t *testing.T) {

	t.Run("role mismatch", func(t *testing.T) {
		a := Content{Role: RoleUser}
		b := Content{Role: RoleModel}
		if merged, ok := a.Merge(&b); ok || merged != nil {
			t.Fatal("should not merge across roles")
		}
	})

	t.Run("text runs coalesce", func(t *testing.T) {
		a := Content{Role: RoleModel, Parts: []Part{Text("<!-- SCREEN_START")}}
		b := Content{Role: RoleModel, Parts: []Part{Text(": home -->")}}
		merged, ok := a.Merge(&b)
		if !ok {
			t.Fatal("merge failed")
		}
		want := []Part{Text("<!-- SCREEN_START: home -->")}
		if !reflect.DeepEqual(merged.Parts, want) {
			t.Fatalf("got %+v", merged.Parts)
		}
		if merged.Role != RoleModel {
			t.Fatalf("got %v", merged.Role)
		}
	})

	t.Run("thought runs coalesce", func(t *testing.T) {
		a := Content{Role: RoleModel, Parts: []Part{Thought("three screens, ")}}
		b := Content{Role: RoleModel, Parts: []Part{Thought("home first")}}
		merged, ok := a.Merge(&b)
		if !ok {
			t.Fatal("merge failed")
		}
		want := []Part{Thought("three screens, home first")}
		if !reflect.DeepEqual(merged.Parts, want) {
			t.Fatalf("got %+v", merged.Parts)
		}
	})

	t.Run("kinds alternate", func(t *testing.T) {
		a := Content{Role: RoleModel, Parts: []Part{
			Thought("layout "),
			Text("<header>"),
		}}
		b := Content{Role: RoleModel, Parts: []Part{
			Text("</header>"),
			Thought(" next screen"),
		}}
		merged, ok := a.Merge(&b)
		if !ok {
			t.Fatal("merge failed")
		}
		want := []Part{
			Thought("layout "),
			Text("<header></header>"),
			Thought(" next screen"),
		}
		if !reflect.DeepEqual(merged.Parts, want) {
			t.Fatalf("got %+v", merged.Parts)
		}
	})

	t.Run("opaque parts break runs", func(t *testing.T) {
		a := Content{Role: RoleUser, Parts: []Part{
			Text("match "),
			FileURL("https://example.com/mock.png"),
		}}
		b := Content{Role: RoleUser, Parts: []Part{
			Text("and "),
			Text("iterate"),
		}}
		merged, ok := a.Merge(&b)
		if !ok {
			t.Fatal("merge failed")
		}
		want := []Part{
			Text("match "),
			FileURL("https://example.com/mock.png"),
			Text("and iterate"),
		}
		if !reflect.DeepEqual(merged.Parts, want) {
			t.Fatalf("got %+v", merged.Parts)
		}
	})

	t.Run("empty sides", func(t *testing.T) {
		full := Content{Role: RoleUser, Parts: []Part{Text("a "), Text("brief")}}
		empty := Content{Role: RoleUser}
		want := []Part{Text("a brief")}

		merged, ok := empty.Merge(&full)
		if !ok || !reflect.DeepEqual(merged.Parts, want) {
			t.Fatalf("got %+v", merged)
		}
		merged, ok = full.Merge(&empty)
		if !ok || !reflect.DeepEqual(merged.Parts, want) {
			t.Fatalf("got %+v", merged)
		}
	})

}

func TestAppendPart(t *testing.T) {
	parts := appendPart(nil, Text("<ma"))
	parts = appendPart(parts, Text("in>"))
	parts = appendPart(parts, Thought("then the "))
	parts = appendPart(parts, Thought("nav"))
	parts = appendPart(parts, Text("<nav>"))
	want := []Part{
		Text("<main>"),
		Thought("then the nav"),
		Text("<nav>"),
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("got %+v", parts)
	}
}
