package generators

import (
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/vars"
)

var modelFlag = cmds.Var[string]("-model")

// DefaultModelName is the model used when the caller names none: the
// -model flag, then the config's model_name or model field, then the
// fallback.
type DefaultModelName string

var _ configs.Configurable = DefaultModelName("")

func (DefaultModelName) ConfigExpr() string {
	return "model_name"
}

func (Module) DefaultModelName(
	loader configs.Loader,
	fallback FallbackModelName,
	logger logs.Logger,
) DefaultModelName {
	name := vars.FirstNonZero(
		DefaultModelName(*modelFlag),
		configs.First[DefaultModelName](loader, "model_name"),
		configs.First[DefaultModelName](loader, "model"),
		DefaultModelName(fallback),
	)
	logger.Info("default model", "name", name)
	return name
}

// FallbackModelName is the model of last resort. Fork the scope to
// change it.
type FallbackModelName string

func (Module) FallbackModelName() FallbackModelName {
	return "gemini-flash"
}

type GetDefaultGenerator func() (Generator, error)

func (Module) GetDefaultGenerator(
	name DefaultModelName,
	get GetGenerator,
) GetDefaultGenerator {
	return func() (Generator, error) {
		return get(string(name))
	}
}
