package paneconfigs

import (
	"math"

	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/vars"
)

// MaxTokens caps the whole prompt. Unset means effectively unlimited.
type MaxTokens int

var _ configs.Configurable = MaxTokens(0)

func (m MaxTokens) ConfigExpr() string {
	return "max_tokens"
}

var maxTokensFlag = cmds.Var[int]("-max-tokens")

func (Module) MaxTokens(
	loader configs.Loader,
) MaxTokens {
	limit := math.MaxInt
	if *maxTokensFlag != 0 {
		limit = min(limit, *maxTokensFlag)
	}
	if n := vars.FirstNonZero(
		configs.First[int](loader, "max_context_tokens"),
		configs.First[int](loader, "max_tokens"),
	); n != 0 {
		limit = min(limit, n)
	}
	return MaxTokens(limit)
}
