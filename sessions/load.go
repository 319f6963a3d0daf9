package sessions

import (
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/storages"
)

// LoadProject feeds a stored transcript back into the session,
// rebuilding the exact state the recording session ended with.
type LoadProject func(project string) error

func (Module) LoadProject(
	session *Session,
	store storages.Store,
	logger logs.Logger,
) LoadProject {
	return func(project string) error {
		transcript, err := store.LoadTranscript(project)
		if err != nil {
			return err
		}
		if _, err := session.Write([]byte(transcript)); err != nil {
			return err
		}
		logger.Info("project loaded",
			"project", project,
			"screens", len(session.Screens()),
		)
		return nil
	}
}
