package storages

import (
	"os"
	"path/filepath"

	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/vars"
)

// ProjectsDir is the root under which every project keeps its
// transcript and artifacts.
type ProjectsDir string

var _ configs.Configurable = ProjectsDir("")

func (p ProjectsDir) ConfigExpr() string {
	return "projects_dir"
}

var projectsDirFlag = cmds.Var[string]("-projects-dir")

func (Module) ProjectsDir(
	loader configs.Loader,
) ProjectsDir {
	dir := vars.FirstNonZero(
		ProjectsDir(*projectsDirFlag),
		configs.First[ProjectsDir](loader, "projects_dir"),
	)
	if dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return ProjectsDir(filepath.Join(home, "pane-projects"))
}
