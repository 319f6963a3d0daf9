package sessions

import (
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/vars"
)

// ProjectName is the name the user asked for. The model's declared
// PROJECT_NAME takes precedence once it arrives; until then this
// names the project directory.
type ProjectName string

var _ configs.Configurable = ProjectName("")

func (p ProjectName) ConfigExpr() string {
	return "project"
}

var projectFlag = cmds.Var[string]("-project")

func (Module) ProjectName(
	loader configs.Loader,
) ProjectName {
	return vars.FirstNonZero(
		ProjectName(*projectFlag),
		configs.First[ProjectName](loader, "project"),
	)
}
