package attachments

import (
	"regexp"

	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/vars"
)

// FileNameOK is a hook for narrowing which files are collected. The
// default accepts everything.
type FileNameOK func(name string) bool

func (Module) FileNameOK() FileNameOK {
	return func(string) bool {
		return true
	}
}

// Match filters collected paths by regexp, from the -match flag or
// config.
type Match string

var matchFlag = cmds.Var[string]("-match")

func (Match) ConfigExpr() string {
	return "match"
}

var _ configs.Configurable = Match("")

func (Module) Match(
	loader configs.Loader,
) Match {
	return vars.FirstNonZero(
		Match(*matchFlag),
		configs.First[Match](loader, "match"),
	)
}

type NameMatch func(string) bool

func (Module) NameMatch(
	match Match,
) NameMatch {
	if match == "" {
		return func(string) bool {
			return true
		}
	}
	re := regexp.MustCompile(string(match))
	return re.MatchString
}

// IncludeImages sends image files as inline parts when set.
type IncludeImages bool

var imagesFlag = cmds.Switch("-images")

func (Module) IncludeImages() IncludeImages {
	return IncludeImages(*imagesFlag)
}
