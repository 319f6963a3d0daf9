package sessions

import (
	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/paneconfigs"
	"github.com/reusee/pane/prototypes"
	"github.com/reusee/pane/storages"
)

// Export assembles the session's current screens into the standalone
// prototype document and writes it, the canvas overview, and the raw
// transcript into the project directory. Returns the prototype path.
type Export func() (string, error)

const (
	artifactName = "prototype.html"
	canvasName   = "canvas.html"
)

func (Module) Export(
	session *Session,
	store storages.Store,
	profile grids.Profile,
	mode paneconfigs.Mode,
	logger logs.Logger,
) Export {
	return func() (string, error) {
		name := session.ProjectName()
		list := session.Screens()

		if _, err := store.SaveTranscript(name, session.Buffer()); err != nil {
			return "", err
		}

		path, err := store.SaveArtifact(name, artifactName,
			prototypes.Assemble(list, profile, name))
		if err != nil {
			return "", err
		}

		// the canvas overview only means something when screens carry
		// positions
		if mode == paneconfigs.ModePrototype {
			if _, err := store.SaveArtifact(name, canvasName,
				prototypes.Canvas(list, profile, name)); err != nil {
				return "", err
			}
		}

		logger.Info("exported",
			"path", path,
			"screens", len(list),
		)
		return path, nil
	}
}
