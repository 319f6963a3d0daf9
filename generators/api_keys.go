package generators

import (
	"os"

	"github.com/reusee/pane/configs"
)

// API keys resolve from config fields first, then environment
// variables, so a project config can pin keys without touching the
// shell profile.

type (
	GoogleAPIKey     string
	DeepseekAPIKey   string
	OpenRouterAPIKey string
)

var (
	_ configs.Configurable = GoogleAPIKey("")
	_ configs.Configurable = DeepseekAPIKey("")
	_ configs.Configurable = OpenRouterAPIKey("")
)

func (GoogleAPIKey) ConfigExpr() string { return "google_api_key" }

func (DeepseekAPIKey) ConfigExpr() string { return "deepseek_api_key" }

func (OpenRouterAPIKey) ConfigExpr() string { return "open_router_api_key" }

func lookupKey[T ~string](loader configs.Loader, configPaths []string, envNames []string) T {
	for _, path := range configPaths {
		if v := configs.First[T](loader, path); v != "" {
			return v
		}
	}
	for _, name := range envNames {
		if v := os.Getenv(name); v != "" {
			return T(v)
		}
	}
	return ""
}

func (Module) GoogleAPIKey(loader configs.Loader) GoogleAPIKey {
	return lookupKey[GoogleAPIKey](loader,
		[]string{"google_api_key"},
		[]string{"GOOGLE_API_KEY"},
	)
}

func (Module) DeepseekAPIKey(loader configs.Loader) DeepseekAPIKey {
	return lookupKey[DeepseekAPIKey](loader,
		[]string{"deepseek_api_key"},
		[]string{"DEEPSEEK_API_KEY"},
	)
}

func (Module) OpenRouterAPIKey(loader configs.Loader) OpenRouterAPIKey {
	return lookupKey[OpenRouterAPIKey](loader,
		[]string{"open_router_api_key", "openrouter_api_key"},
		[]string{"OPEN_ROUTER_API_KEY", "OPENROUTER_API_KEY"},
	)
}
