package sessions

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/pane/generators"
	"github.com/reusee/pane/storages"
)

// scriptedGenerator streams canned turns in small chunks, the way the
// wire would deliver them.
type scriptedGenerator struct {
	turns []string
	turn  int
}

var _ generators.Generator = new(scriptedGenerator)

func (s *scriptedGenerator) Args() generators.GeneratorArgs {
	return generators.GeneratorArgs{
		Model:         "scripted",
		ContextTokens: 1 << 20,
	}
}

func (s *scriptedGenerator) CountTokens(text string) (int, error) {
	return len(text) / 4, nil
}

func (s *scriptedGenerator) Generate(ctx context.Context, state generators.State) (generators.State, error) {
	if s.turn >= len(s.turns) {
		return state, nil
	}
	text := s.turns[s.turn]
	s.turn++
	for i := 0; i < len(text); i += 7 {
		var err error
		state, err = state.AppendContent(&generators.Content{
			Role: generators.RoleModel,
			Parts: []generators.Part{
				generators.Text(text[i:min(i+7, len(text))]),
			},
		})
		if err != nil {
			return nil, err
		}
	}
	state, err := state.AppendContent(&generators.Content{
		Role: generators.RoleLog,
		Parts: []generators.Part{generators.Usage{
			InputTokens:  100,
			OutputTokens: len(text) / 4,
		}},
	})
	if err != nil {
		return nil, err
	}
	return state.Flush()
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	gen := &scriptedGenerator{
		turns: []string{
			"<!-- PROJECT_NAME: Demo App -->\n" +
				"<!-- PROJECT_ICON: D -->\n" +
				"<!-- MESSAGE: here you go -->\n" +
				"<!-- SCREEN_START: Home [0,0] [ROOT] -->\n" +
				`<div><a href="#screen-about">about</a></div>` + "\n" +
				"<!-- SCREEN_END -->\n" +
				"<!-- SCREEN_START: About [1,0] -->\n" +
				"<div>About</div>\n" +
				"<!-- SCREEN_END -->",
		},
	}

	testScope(t).Fork(
		func() storages.ProjectsDir {
			return storages.ProjectsDir(dir)
		},
		func() generators.GetDefaultGenerator {
			return func() (generators.Generator, error) {
				return gen, nil
			}
		},
	).Call(func(
		session *Session,
		generate Generate,
	) {

		var echo strings.Builder
		err := generate(context.Background(), &echo, "a two screen demo", false)
		if err != nil {
			t.Fatal(err)
		}

		// terminal echo carries the raw stream
		if !strings.Contains(echo.String(), "SCREEN_START: Home") {
			t.Fatalf("got %q", echo.String())
		}

		// the session reconstructed both screens
		list := session.Screens()
		if len(list) != 2 {
			t.Fatalf("got %+v", list)
		}
		if session.ProjectName() != "Demo App" {
			t.Fatalf("got %q", session.ProjectName())
		}
		if session.Generating() {
			t.Fatal("still generating")
		}
		messages := session.Result().Messages
		if len(messages) != 1 || messages[0] != "here you go" {
			t.Fatalf("got %+v", messages)
		}

		// export wrote the project directory
		artifact, err := os.ReadFile(filepath.Join(dir, "demo-app", "prototype.html"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(artifact), `id="screen-home"`) {
			t.Fatal("no home container")
		}
		if !strings.Contains(string(artifact), `<div>About</div>`) {
			t.Fatal("markup not verbatim")
		}
		if _, err := os.Stat(filepath.Join(dir, "demo-app", "canvas.html")); err != nil {
			t.Fatal(err)
		}
		transcript, err := os.ReadFile(filepath.Join(dir, "demo-app", "transcript.txt"))
		if err != nil {
			t.Fatal(err)
		}
		if string(transcript) != session.Buffer() {
			t.Fatal("transcript differs from buffer")
		}
	})
}

func TestGenerateEmptyBrief(t *testing.T) {
	testScope(t).Fork(
		func() generators.GetDefaultGenerator {
			return func() (generators.Generator, error) {
				return &scriptedGenerator{}, nil
			}
		},
	).Call(func(
		generate Generate,
	) {
		var echo strings.Builder
		err := generate(context.Background(), &echo, "", false)
		if err == nil {
			t.Fatal("should error")
		}
	})
}
