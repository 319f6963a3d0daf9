package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/vars"
)

// Generator produces model output from a conversation state. Generate
// appends everything it receives, including usage and finish
// bookkeeping, and returns the grown state.
type Generator interface {
	Args() GeneratorArgs
	CountTokens(text string) (int, error)
	Generate(ctx context.Context, state State) (State, error)
}

// temperatureFlag overrides the configured sampling temperature for
// one invocation.
var temperatureFlag = cmds.Var[float32]("-temperature")

func effectiveTemperature(configured *float32) *float32 {
	if *temperatureFlag != 0 {
		return temperatureFlag
	}
	return configured
}

const ollamaBaseURL = "http://127.0.0.1:11434/v1"

// GetGenerator resolves a model name to a client. Names defined in the
// config's generators list win, then ollama:model shorthands, then the
// built-in Gemini presets.
type GetGenerator func(name string) (Generator, error)

func (Module) GetGenerator(
	getSpecs GetGeneratorSpecs,
	newGemini NewGemini,
	newOpenAI NewOpenAI,
	newDeepseek NewDeepseek,
	newOpenRouter NewOpenRouter,
) GetGenerator {

	fromSpec := func(spec GeneratorSpec) (Generator, error) {
		switch strings.ToLower(spec.Type) {
		case "gemini":
			return newGemini(spec.GeneratorArgs), nil
		case "openai", "open-ai", "open_ai":
			return newOpenAI(spec.GeneratorArgs, spec.APIKey), nil
		case "deepseek":
			return newDeepseek(spec.GeneratorArgs), nil
		case "openrouter", "open-router", "open_router":
			return newOpenRouter(spec.GeneratorArgs), nil
		case "ollama":
			spec.BaseURL = ollamaBaseURL
			return newOpenAI(spec.GeneratorArgs, ""), nil
		}
		return nil, fmt.Errorf("unknown generator type: %q", spec.Type)
	}

	geminiPreset := func(model string) (Generator, error) {
		return newGemini(GeneratorArgs{
			Model:             model,
			ContextTokens:     192 * K,
			MaxGenerateTokens: vars.PtrTo(32 * K),
			Temperature:       vars.PtrTo(float32(0.1)),
		}), nil
	}

	return func(name string) (Generator, error) {

		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name == name {
				return fromSpec(spec)
			}
		}

		if model, ok := strings.CutPrefix(name, "ollama:"); ok {
			return newOpenAI(GeneratorArgs{
				BaseURL:       ollamaBaseURL,
				Model:         model,
				DisableSearch: true,
			}, ""), nil
		}

		switch name {
		case "flash", "gemini-flash":
			return geminiPreset("models/gemini-flash-latest")
		case "pro", "gemini-pro":
			return geminiPreset("models/gemini-pro-latest")
		}

		return nil, fmt.Errorf("unknown model: %q", name)
	}
}
