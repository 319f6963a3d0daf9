package paneconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/logs"
)

//go:embed schema.cue
var schema string

// ConfigsLoader reads pane.cue or .pane.cue from the working
// directory, the user config dir and /etc, in that order. Earlier
// files take precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, name := range []string{"pane.cue", ".pane.cue"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}
