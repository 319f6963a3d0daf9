package phases

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterh/liner"
	"github.com/reusee/pane/debugs"
	"github.com/reusee/pane/generators"
	"github.com/reusee/pane/logs"
)

// ChatCommand is a slash command available in the chat loop beyond
// the built-in /quit, /regen and /tap. Commands act on the session,
// not on the conversation state.
type ChatCommand struct {
	Name string
	Desc string
	Run  func(ctx context.Context) (string, error)
}

type ChatCommands []ChatCommand

func (c ChatCommands) find(name string) *ChatCommand {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

var historyPath = sync.OnceValue(func() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pane-chat-history")
})

// promptLine reads one non-empty line, maintaining the shared history
// file. EOF and ctrl-c surface as done.
func promptLine(logger logs.Logger) (input string, done bool, err error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetMultiLineMode(true)

	path := historyPath()
	if path != "" {
		if f, err := os.Open(path); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for input == "" {
		input, err = line.Prompt(">> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			return "", true, nil
		}
		if err != nil {
			return "", false, err
		}
		input = strings.TrimSpace(input)
	}
	line.AppendHistory(input)

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			logger.Warn("make history dir", "err", err)
		} else if f, err := os.Create(path); err != nil {
			logger.Warn("write history file", "err", err)
		} else {
			line.WriteHistory(f)
			f.Close()
		}
	}

	return input, false, nil
}

type BuildChat func(generator generators.Generator) PhaseBuilder

func (Module) BuildChatPhase(
	buildGen BuildGenerate,
	logger logs.Logger,
	tap debugs.Tap,
	commands ChatCommands,
) (buildChat BuildChat) {

	buildChat = func(generator generators.Generator) PhaseBuilder {
		return func(cont Phase) Phase {
			var phase Phase
			phase = func(ctx context.Context, state generators.State) (Phase, generators.State, error) {

				input, done, err := promptLine(logger)
				if err != nil {
					return nil, nil, err
				}
				if done {
					return nil, nil, nil
				}

				switch input {

				case "/quit", "/exit":
					return cont, state, nil

				case "/regen":
					checkpoint, ok := generators.As[RedoCheckpoint](state)
					if !ok {
						return nil, nil, fmt.Errorf("nothing to regenerate")
					}
					return buildGen(checkpoint.generator)(phase), checkpoint.state0, nil

				case "/tap":
					tap(ctx, "chat", map[string]any{
						"args":          generator.Args(),
						"contents":      state.Contents(),
						"system_prompt": state.SystemPrompt(),
					})
					return phase, state, nil

				}

				if command := commands.find(input); command != nil {
					message, err := command.Run(ctx)
					if err != nil {
						logger.Warn("chat command error",
							"command", command.Name,
							"err", err,
						)
					} else if message != "" {
						fmt.Println(message)
					}
					return phase, state, nil
				}

				if strings.HasPrefix(input, "/") {
					fmt.Println("commands:")
					fmt.Println("/quit  end the chat")
					fmt.Println("/regen  regenerate the last turn")
					fmt.Println("/tap  debug repl over the chat state")
					for _, command := range commands {
						fmt.Printf("%s  %s\n", command.Name, command.Desc)
					}
					return phase, state, nil
				}

				state, err = state.AppendContent(&generators.Content{
					Role: generators.RoleUser,
					Parts: []generators.Part{
						generators.Text(input + "\n\n"),
					},
				})
				if err != nil {
					return nil, nil, err
				}

				return buildGen(generator)(phase), state, nil
			}
			return phase
		}
	}
	return
}
