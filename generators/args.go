package generators

// GeneratorArgs parameterizes a provider client. The json tags double
// as the cue field names in the config's generators list.
type GeneratorArgs struct {
	Model             string   `json:"model"`
	BaseURL           string   `json:"base_url"`
	APIKey            string   `json:"api_key"`
	ContextTokens     int      `json:"context_tokens"`
	MaxGenerateTokens *int     `json:"max_generate_tokens"`
	Temperature       *float32 `json:"temperature"`
	DisableSearch     bool     `json:"disable_search"`
	IsOpenRouter      bool     `json:"is_open_router"`
}
