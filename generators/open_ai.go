package generators

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/dscope"
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/debugs"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/nets"
	"github.com/reusee/pane/vars"
)

var (
	debugOpenAI = cmds.Switch("-debug-openai")
	tapOpenAI   = cmds.Switch("-tap-openai")
)

// OpenAI speaks the chat completions protocol with SSE streaming. It
// covers the OpenAI API itself and the compatible endpoints: ollama,
// Deepseek, OpenRouter.
type OpenAI struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Count  dscope.Inject[BPETokenCounter]
	Logger dscope.Inject[logs.Logger]
	Tap    dscope.Inject[debugs.Tap]
}

type NewOpenAI func(args GeneratorArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAI {
	return func(args GeneratorArgs, apiKey string) *OpenAI {
		ret := &OpenAI{
			args:   args,
			apiKey: apiKey,
			client: client,
		}
		inject(&ret)
		return ret
	}
}

var _ Generator = new(OpenAI)

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

func (o *OpenAI) CountTokens(text string) (int, error) {
	return o.Count()(text)
}

func (o *OpenAI) buildRequest(state State) (*chatRequest, error) {
	messages, err := chatMessagesFromState(state)
	if err != nil {
		return nil, err
	}
	req := &chatRequest{
		Model:               o.args.Model,
		Messages:            messages,
		Stream:              true,
		ReasoningEffort:     "high",
		MaxCompletionTokens: vars.DerefOrZero(o.args.MaxGenerateTokens),
		Temperature:         vars.DerefOrZero(effectiveTemperature(o.args.Temperature)),
	}
	if o.args.IsOpenRouter {
		// OpenRouter nests the effort under a reasoning object
		req.Reasoning = &reasoningSpec{Effort: req.ReasoningEffort}
		req.ReasoningEffort = ""
	}
	return req, nil
}

func (o *OpenAI) Generate(ctx context.Context, state State) (State, error) {
	req, err := o.buildRequest(state)
	if err != nil {
		return nil, err
	}

	if *debugOpenAI {
		body, err := json.Marshal(req.Messages)
		if err != nil {
			return nil, err
		}
		o.Logger().InfoContext(ctx, "chat messages", "messages", body)
	}
	if *tapOpenAI {
		o.Tap()(ctx, "before chat completion", map[string]any{
			"messages": req.Messages,
			"args":     o.args,
		})
	}
	o.Logger().InfoContext(ctx, "generating", "model", o.args.Model)

	resp, err := o.post(ctx, req)
	if err != nil {
		return state, err
	}
	defer resp.Body.Close()

	return o.consume(ctx, resp.Body, state)
}

func (o *OpenAI) post(ctx context.Context, req *chatRequest) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.args.BaseURL+"/chat/completions",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, requestError{err: err, req: req}
	}
	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	err = fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, raw)
	var wire struct {
		Error *apiError `json:"error"`
	}
	if jsonErr := json.Unmarshal(raw, &wire); jsonErr == nil && wire.Error != nil {
		wire.Error.HTTPStatusCode = resp.StatusCode
		err = wire.Error
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.Join(err, ErrRetryable)
	}
	return nil, requestError{err: err, req: req}
}

func (o *OpenAI) consume(ctx context.Context, body io.Reader, state State) (State, error) {
	parser := new(DeltaParser)

	appendAll := func(contents []*Content) (err error) {
		for _, content := range contents {
			if *debugOpenAI {
				o.Logger().InfoContext(ctx, "chat content", "details", content)
			}
			state, err = state.AppendContent(content)
			if err != nil {
				return err
			}
		}
		return nil
	}
	drain := func() error {
		contents, err := parser.End()
		if err != nil {
			return err
		}
		return appendAll(contents)
	}

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "data: [DONE]") {
			break
		}
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return state, fmt.Errorf("bad stream chunk: %w", err)
		}
		if *debugOpenAI {
			o.Logger().InfoContext(ctx, "chat chunk", "details", chunk)
		}

		if chunk.Usage != nil {
			if err := appendAll([]*Content{{
				Role:  RoleLog,
				Parts: []Part{chunk.Usage.toUsage()},
			}}); err != nil {
				return state, err
			}
		}

		if len(chunk.Choices) == 0 {
			continue
		}
		choice := chunk.Choices[0]

		contents, err := parser.Input(choice.Delta)
		if err != nil {
			return state, err
		}
		if err := appendAll(contents); err != nil {
			return state, err
		}

		if reason := choice.FinishReason; reason != "" {
			if err := drain(); err != nil {
				return state, err
			}
			if err := appendAll([]*Content{{
				Role:  RoleLog,
				Parts: []Part{FinishReason(reason)},
			}}); err != nil {
				return state, err
			}
			if reason == "error" {
				return state, errors.Join(errors.New(reason), ErrRetryable)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return state, fmt.Errorf("reading stream: %w", err)
	}

	if err := drain(); err != nil {
		return state, err
	}
	return state.Flush()
}

// chatMessagesFromState converts a state to wire messages: system
// prompt first, the model role renamed to assistant, consecutive
// parts of one role merged into one message.
func chatMessagesFromState(state State) ([]chatMessage, error) {
	var b messageBuilder
	if system := state.SystemPrompt(); system != "" {
		b.messages = append(b.messages, chatMessage{
			Role:    string(RoleSystem),
			Content: system,
		})
	}

	for _, content := range state.Contents() {
		role := content.Role
		if role == RoleModel {
			role = RoleAssistant
		}
		for _, part := range content.Parts {
			switch part := part.(type) {

			case Text:
				if len(part) > 0 {
					b.add(role, contentPart{Type: "text", Text: string(part)})
				}

			case Thought:
				if len(part) > 0 {
					// keep reasoning visible on endpoints without a thought channel
					b.add(role, contentPart{Type: "text", Text: "<thought>" + string(part) + "</thought>"})
				}

			case FileURL:
				if len(part) > 0 {
					b.add(role, contentPart{
						Type:     "image_url",
						ImageURL: &imageRef{URL: string(part)},
					})
				}

			case FileContent:
				if isTextMIMEType(part.MimeType) {
					b.add(role, contentPart{Type: "text", Text: string(part.Content)})
				} else {
					b.add(role, contentPart{
						Type: "image_url",
						ImageURL: &imageRef{
							URL: fmt.Sprintf("data:%s;base64,%s",
								part.MimeType,
								base64.StdEncoding.EncodeToString(part.Content)),
						},
					})
				}

			}
		}
	}

	return b.finish(), nil
}

type messageBuilder struct {
	messages []chatMessage
}

func (b *messageBuilder) add(role Role, part contentPart) {
	n := len(b.messages)
	if n == 0 || b.messages[n-1].Role != string(role) {
		b.messages = append(b.messages, chatMessage{Role: string(role)})
		n++
	}
	last := &b.messages[n-1]
	if part.Type == "text" {
		if m := len(last.MultiContent); m > 0 && last.MultiContent[m-1].Type == "text" {
			last.MultiContent[m-1].Text += part.Text
			return
		}
	}
	last.MultiContent = append(last.MultiContent, part)
}

// finish collapses single-text messages to the plain content field
// most endpoints prefer.
func (b *messageBuilder) finish() []chatMessage {
	for i, msg := range b.messages {
		if msg.Content != "" || len(msg.MultiContent) != 1 {
			continue
		}
		if part := msg.MultiContent[0]; part.Type == "text" {
			b.messages[i].Content = part.Text
			b.messages[i].MultiContent = nil
		}
	}
	return b.messages
}

func isTextMIMEType(t string) bool {
	mtype := mimetype.Lookup(t)
	for ; mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("text/plain") {
			return true
		}
	}
	return false
}
