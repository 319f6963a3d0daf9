package sessions

import (
	"testing"

	"github.com/reusee/pane/generators"
)

func TestFeed(t *testing.T) {
	testScope(t).Call(func(
		session *Session,
	) {

		var state generators.State
		state = generators.NewPrompts("system", nil)
		state = NewFeed(state, session)

		append_ := func(role generators.Role, parts ...generators.Part) {
			t.Helper()
			var err error
			state, err = state.AppendContent(&generators.Content{
				Role:  role,
				Parts: parts,
			})
			if err != nil {
				t.Fatal(err)
			}
		}

		append_(generators.RoleUser, generators.Text("make an app"))
		append_(generators.RoleModel,
			generators.Thought("thinking"),
			generators.Text("<!-- SCREEN_START: Home"),
		)
		append_(generators.RoleAssistant, generators.Text(" [0,0] -->hi<!-- SCREEN_END -->"))
		append_(generators.RoleLog, generators.Text("noise"))

		// only the model's text reached the transcript
		want := "<!-- SCREEN_START: Home [0,0] -->hi<!-- SCREEN_END -->"
		if session.Buffer() != want {
			t.Fatalf("got %q", session.Buffer())
		}
		list := session.Screens()
		if len(list) != 1 || list[0].Markup != "hi" {
			t.Fatalf("got %+v", list)
		}

		// the decorator still behaves as a state
		if state.SystemPrompt() != "system" {
			t.Fatalf("got %q", state.SystemPrompt())
		}
		if len(state.Contents()) != 4 {
			t.Fatalf("got %d", len(state.Contents()))
		}
		if _, ok := generators.As[generators.Prompts](state); !ok {
			t.Fatal("cannot unwrap to prompts")
		}
		flushed, err := state.Flush()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := flushed.(Feed); !ok {
			t.Fatalf("got %T", flushed)
		}
	})
}
