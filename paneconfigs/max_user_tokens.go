package paneconfigs

import (
	"math"

	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
)

// MaxUserTokens caps what the attachment provider may spend on
// reference files.
type MaxUserTokens int

var _ configs.Configurable = MaxUserTokens(0)

func (m MaxUserTokens) ConfigExpr() string {
	return "max_user_tokens"
}

var maxUserTokensFlag = cmds.Var[int]("-max-user-tokens")

func (Module) MaxUserTokens(
	loader configs.Loader,
) MaxUserTokens {
	limit := math.MaxInt
	if *maxUserTokensFlag != 0 {
		limit = min(limit, *maxUserTokensFlag)
	}
	if n := configs.First[int](loader, "max_user_tokens"); n != 0 {
		limit = min(limit, n)
	}
	return MaxUserTokens(limit)
}
