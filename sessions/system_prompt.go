package sessions

import (
	"github.com/reusee/pane/paneconfigs"
	"github.com/reusee/pane/prompts"
)

type SystemPrompt string

func (Module) SystemPrompt(
	mode paneconfigs.Mode,
) SystemPrompt {
	switch mode {
	case paneconfigs.ModeDesign:
		return SystemPrompt(prompts.Design)
	}
	return SystemPrompt(prompts.Prototype)
}
