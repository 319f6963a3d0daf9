package generators

import (
	"sync"

	"github.com/tiktoken-go/tokenizer"
	"google.golang.org/genai"
	googletokenizer "google.golang.org/genai/tokenizer"
)

type TokenCounter = func(text string) (int, error)

// BPETokenCounter counts with the o200k encoding. OpenAI-compatible
// endpoints use it, and it is close enough for budgeting attachments
// against any model's context window.
type BPETokenCounter TokenCounter

func (Module) BPETokenCounter() BPETokenCounter {
	enc, encErr := tokenizer.Get(tokenizer.O200kBase)
	return func(text string) (int, error) {
		if encErr != nil {
			return 0, encErr
		}
		return enc.Count(text)
	}
}

// GeminiTokenCounter counts with the local Gemini tokenizer, one
// cached counter per model.
type GeminiTokenCounter func(model string) TokenCounter

func (Module) GeminiTokenCounter() GeminiTokenCounter {
	var counters sync.Map // model -> TokenCounter

	return func(model string) TokenCounter {
		// the local tokenizer ships vocabularies up to 1.5 only, and
		// newer models tokenize near-identically, so pin this one
		model = "gemini-1.5-pro"

		if v, ok := counters.Load(model); ok {
			return v.(TokenCounter)
		}

		load := sync.OnceValues(func() (*googletokenizer.LocalTokenizer, error) {
			return googletokenizer.NewLocalTokenizer(model)
		})
		counter := TokenCounter(func(text string) (int, error) {
			tk, err := load()
			if err != nil {
				return 0, err
			}
			resp, err := tk.CountTokens([]*genai.Content{
				genai.NewContentFromText(text, "user"),
			}, nil)
			if err != nil {
				return 0, err
			}
			return int(resp.TotalTokens), nil
		})

		v, _ := counters.LoadOrStore(model, counter)
		return v.(TokenCounter)
	}
}
