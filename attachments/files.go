package attachments

import (
	"path/filepath"

	"github.com/reusee/pane/cmds"
)

// Files holds the -file arguments after glob expansion. When set they
// replace the working directory as collection roots.
type Files []string

var fileArgs []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil || len(paths) == 0 {
			// not a pattern, take it literally
			fileArgs = append(fileArgs, pattern)
			return
		}
		fileArgs = append(fileArgs, paths...)
	}).Desc("attach files matching the pattern, instead of scanning the working directory"))
}

func (Module) Files() Files {
	return Files(fileArgs)
}
