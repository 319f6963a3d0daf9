package generators

import "fmt"

// Wire types for the chat completions protocol. Only the fields pane
// reads or writes are declared.

type chatRequest struct {
	Model               string         `json:"model"`
	Messages            []chatMessage  `json:"messages"`
	Stream              bool           `json:"stream"`
	ReasoningEffort     string         `json:"reasoning_effort,omitempty"`
	Reasoning           *reasoningSpec `json:"reasoning,omitempty"`
	MaxCompletionTokens int            `json:"max_completion_tokens,omitempty"`
	Temperature         float32        `json:"temperature,omitempty"`
}

type reasoningSpec struct {
	Effort    string `json:"effort,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	Exclude   bool   `json:"exclude,omitempty"`
	Enabled   bool   `json:"enabled,omitempty"`
}

type chatMessage struct {
	Role         string        `json:"role"`
	Content      string        `json:"content,omitempty"`
	MultiContent []contentPart `json:"multi_content,omitempty"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type streamChunk struct {
	Choices []streamChoice `json:"choices"`
	Usage   *wireUsage     `json:"usage,omitempty"`
}

type streamChoice struct {
	Delta        streamDelta `json:"delta"`
	FinishReason string      `json:"finish_reason"`
}

type streamDelta struct {
	Role             string `json:"role,omitempty"`
	Content          string `json:"content,omitempty"`
	ReasoningContent string `json:"reasoning_content,omitempty"`
}

type wireUsage struct {
	PromptTokens            int                `json:"prompt_tokens"`
	CompletionTokens        int                `json:"completion_tokens"`
	PromptTokensDetails     *promptDetails     `json:"prompt_tokens_details,omitempty"`
	CompletionTokensDetails *completionDetails `json:"completion_tokens_details,omitempty"`
}

type promptDetails struct {
	CachedTokens int `json:"cached_tokens,omitempty"`
}

type completionDetails struct {
	ReasoningTokens int `json:"reasoning_tokens,omitempty"`
}

// toUsage flattens the wire report. Reasoning tokens count toward
// completion_tokens upstream, so they move from output to thought
// here.
func (u *wireUsage) toUsage() Usage {
	usage := Usage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
	}
	if d := u.PromptTokensDetails; d != nil {
		usage.CachedTokens = d.CachedTokens
	}
	if d := u.CompletionTokensDetails; d != nil {
		usage.OutputTokens -= d.ReasoningTokens
		usage.ThoughtTokens = d.ReasoningTokens
	}
	return usage
}

type apiError struct {
	Code           any     `json:"code,omitempty"`
	Message        string  `json:"message,omitempty"`
	Param          *string `json:"param,omitempty"`
	Type           string  `json:"type,omitempty"`
	HTTPStatusCode int     `json:"-"`
}

var _ error = new(apiError)

func (e *apiError) Error() string {
	return e.Message
}

// requestError ties a transport or API failure to the request that
// caused it.
type requestError struct {
	err error
	req *chatRequest
}

var _ error = requestError{}

func (e requestError) Error() string {
	return fmt.Sprintf("%s: %v", e.req.Model, e.err)
}

func (e requestError) Unwrap() error {
	return e.err
}
