package generators

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/modes"
)

func TestGeneratorSpecs(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		dscope.Provide(configs.NewLoader(nil, "")),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"test_generator_specs.cue"}, "")
		},
	).Call(func(
		get GetGenerator,
	) {

		generator, err := get("sketcher")
		if err != nil {
			t.Fatal(err)
		}
		if generator.Args().Model != "qwen3-coder" {
			t.Fatalf("got %+v", generator.Args())
		}

		if _, err := get("ollama:llama3"); err != nil {
			t.Fatal(err)
		}

		if _, err := get("no-such-model"); err == nil {
			t.Fatal("should fail")
		}

	})
}
