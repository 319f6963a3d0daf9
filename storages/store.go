package storages

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/protocols"
)

// Store keeps projects on disk, one directory per project slug. No
// database: the raw transcript is the source of truth, everything
// else can be rebuilt from it.
type Store struct {
	ProjectsDir dscope.Inject[ProjectsDir]
	Logger      dscope.Inject[logs.Logger]
}

func (Module) Store(
	inject dscope.InjectStruct,
) (ret Store) {
	inject(&ret)
	return
}

const transcriptName = "transcript.txt"

func slugOf(project string) string {
	slug := protocols.Slug(project)
	if slug == "" {
		slug = "untitled"
	}
	return slug
}

// ProjectDir resolves and creates the directory for a project.
func (s Store) ProjectDir(project string) (string, error) {
	dir := filepath.Join(string(s.ProjectsDir()), slugOf(project))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", wrap(err)
	}
	return dir, nil
}

// SaveTranscript writes the raw model output of a session. The
// transcript alone rebuilds every artifact offline.
func (s Store) SaveTranscript(project string, content string) (string, error) {
	dir, err := s.ProjectDir(project)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, transcriptName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", wrap(err)
	}
	s.Logger().Info("transcript saved",
		"path", path,
		"bytes", len(content),
	)
	return path, nil
}

// LoadTranscript reads a saved transcript. A missing project surfaces
// as os.ErrNotExist so callers can treat it as a fresh start.
func (s Store) LoadTranscript(project string) (string, error) {
	path := filepath.Join(string(s.ProjectsDir()), slugOf(project), transcriptName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		return "", wrap(err)
	}
	return string(content), nil
}

// SaveArtifact writes one assembled document next to the transcript.
func (s Store) SaveArtifact(project string, name string, content string) (string, error) {
	dir, err := s.ProjectDir(project)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", wrap(err)
	}
	s.Logger().Info("artifact saved",
		"path", path,
		"bytes", len(content),
	)
	return path, nil
}

// List returns the slugs of existing projects.
func (s Store) List() ([]string, error) {
	entries, err := os.ReadDir(string(s.ProjectsDir()))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, wrap(err)
	}
	var projects []string
	for _, entry := range entries {
		if entry.IsDir() {
			projects = append(projects, entry.Name())
		}
	}
	return projects, nil
}
