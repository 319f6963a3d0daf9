package generators

import (
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/vars"
)

// OpenRouter and Deepseek speak the chat completions protocol, so
// both construct an OpenAI client pinned to their endpoint.

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	deepseekBaseURL   = "https://api.deepseek.com/"
)

type NewOpenRouter func(args GeneratorArgs) *OpenAI

func (Module) NewOpenRouter(
	newOpenAI NewOpenAI,
	apiKey OpenRouterAPIKey,
	loader configs.Loader,
) NewOpenRouter {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = vars.FirstNonZero(
			configs.First[string](loader, "openrouter_endpoint"),
			openRouterBaseURL,
		)
		args.IsOpenRouter = true
		return newOpenAI(args, vars.FirstNonZero(args.APIKey, string(apiKey)))
	}
}

type NewDeepseek func(args GeneratorArgs) *OpenAI

func (Module) NewDeepseek(
	newOpenAI NewOpenAI,
	apiKey DeepseekAPIKey,
) NewDeepseek {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = deepseekBaseURL
		return newOpenAI(args, vars.FirstNonZero(args.APIKey, string(apiKey)))
	}
}
