package sessions

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/pane/attachments"
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/debugs"
	"github.com/reusee/pane/generators"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/paneconfigs"
	"github.com/reusee/pane/phases"
)

// Generate drives one full production run: compose the prompt, stream
// the model's output through the session, then export. When
// interactive, the run continues into the chat loop so the user can
// iterate with follow-up turns.
type Generate func(ctx context.Context, output io.Writer, brief string, interactive bool) error

var showThoughts = cmds.Switch("-thoughts")

func (Module) Generate(
	session *Session,
	provider attachments.Provider,
	files attachments.Files,
	systemPrompt SystemPrompt,
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxTokens paneconfigs.MaxTokens,
	maxUserTokens paneconfigs.MaxUserTokens,
	getGenerator generators.GetDefaultGenerator,
	buildGenerate phases.BuildGenerate,
	buildChat phases.BuildChat,
	export Export,
	tap debugs.Tap,
) Generate {

	return func(ctx context.Context, output io.Writer, brief string, interactive bool) error {
		ctx, _ = newSpan(ctx, "")

		generator, err := getGenerator()
		if err != nil {
			return err
		}
		args := generator.Args()
		logger.InfoContext(ctx, "generator",
			"model", args.Model,
			"type", fmt.Sprintf("%T", generator),
			"base_url", args.BaseURL,
		)

		budget, err := promptBudget(generator, int(maxTokens), string(systemPrompt))
		if err != nil {
			return err
		}

		// user prompt: the brief plus any attached reference material
		var parts []generators.Part
		if len(files) > 0 {
			briefTokens, err := generator.CountTokens(brief)
			if err != nil {
				return err
			}
			fileBudget := min(budget-briefTokens, int(maxUserTokens))
			parts, err = provider.Parts(fileBudget, generator.CountTokens)
			if err != nil {
				return err
			}
		}
		if brief != "" {
			parts = append(parts, generators.Text(brief))
		}
		if len(parts) == 0 {
			return fmt.Errorf("nothing to ask: pass a brief or attach files")
		}

		state := openingState(systemPrompt, parts, output, session)

		session.setGenerating(true)
		defer session.setGenerating(false)

		var next phases.Phase
		if interactive {
			next = buildChat(generator)(nil)
		}
		phase := buildGenerate(generator)(next)

		for phase != nil {
			nextPhase, nextState, phaseErr := phase(ctx, state)
			if phaseErr == nil {
				phase, state = nextPhase, nextState
				continue
			}
			if !interactive {
				return phaseErr
			}

			// record the failure in the conversation and hand over
			state, err = state.AppendContent(&generators.Content{
				Role: generators.RoleLog,
				Parts: []generators.Part{
					generators.Error{
						Error: phaseErr,
					},
				},
			})
			if err != nil {
				return err
			}
			tap(ctx, "generate error", map[string]any{
				"error":         phaseErr.Error(),
				"contents":      state.Contents(),
				"system_prompt": state.SystemPrompt(),
			})
			phase = buildChat(generator)(phase)
		}

		logUsage(ctx, logger, state)

		_, err = export()
		return err
	}
}

// promptBudget is the token room left for user content once the
// context window has paid for the system prompt and reserved space
// for the reply.
func promptBudget(generator generators.Generator, maxTokens int, systemPrompt string) (int, error) {
	budget := min(generator.Args().ContextTokens, maxTokens)
	if reply := generator.Args().MaxGenerateTokens; reply != nil {
		budget -= *reply * 2
	}
	systemTokens, err := generator.CountTokens(systemPrompt)
	if err != nil {
		return 0, err
	}
	budget -= systemTokens
	if budget <= 0 {
		return 0, fmt.Errorf("token limit too low, need at least %d", -budget)
	}
	return budget, nil
}

func openingState(
	systemPrompt SystemPrompt,
	parts []generators.Part,
	output io.Writer,
	session *Session,
) generators.State {
	var state generators.State
	state = generators.NewPrompts(
		string(systemPrompt),
		[]*generators.Content{
			{
				Role:  generators.RoleUser,
				Parts: parts,
			},
		},
	)
	state = generators.NewOutput(state, output, *showThoughts)
	return NewFeed(state, session)
}

func logUsage(ctx context.Context, logger logs.Logger, state generators.State) {
	var total generators.Usage
	seen := 0
	for _, content := range state.Contents() {
		for _, part := range content.Parts {
			usage, ok := part.(generators.Usage)
			if !ok {
				continue
			}
			seen++
			total = total.Add(usage)
		}
	}
	if seen == 0 {
		return
	}
	logger.InfoContext(ctx, "usage",
		"input tokens", total.InputTokens,
		"cached tokens", total.CachedTokens,
		"output tokens", total.OutputTokens,
		"thought tokens", total.ThoughtTokens,
	)
}
