package paneconfigs

import (
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/vars"
)

// Mode selects what the model is asked to produce: a placed,
// navigable prototype, or standalone screens.
type Mode string

const (
	ModePrototype Mode = "prototype"
	ModeDesign    Mode = "design"
)

var _ configs.Configurable = Mode("")

func (m Mode) ConfigExpr() string {
	return "mode"
}

var modeFlag = cmds.Var[string]("-mode")

func (Module) Mode(
	loader configs.Loader,
	logger logs.Logger,
) Mode {
	mode := vars.FirstNonZero(
		Mode(*modeFlag),
		configs.First[Mode](loader, "mode"),
		ModePrototype,
	)
	switch mode {
	case ModePrototype, ModeDesign:
	default:
		logger.Warn("unknown mode, using prototype",
			"mode", string(mode),
		)
		mode = ModePrototype
	}
	return mode
}
