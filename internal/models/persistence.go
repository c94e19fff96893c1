package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveDir is where sessions are persisted. Overridden from config at startup.
var SaveDir = ".saves"

func (s *Session) Save(name string) error {
	dir := filepath.Join(SaveDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	files := map[string]any{
		"trail.yaml":   s.Trail,
		"vehicle.yaml": s.Vehicle,
		"journal.yaml": s.Journal,
		"run.yaml": struct {
			ID       string   `yaml:"id"`
			Leader   string   `yaml:"leader"`
			Progress Progress `yaml:"progress"`
		}{s.ID, s.Leader, s.Progress},
	}

	for file, v := range files {
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, file), data, 0644); err != nil {
			return err
		}
	}

	return nil
}

func LoadSession(name string) (*Session, error) {
	dir := filepath.Join(SaveDir, name)

	var trail Trail
	if err := readYAML(filepath.Join(dir, "trail.yaml"), &trail); err != nil {
		return nil, err
	}

	var vehicle Vehicle
	if err := readYAML(filepath.Join(dir, "vehicle.yaml"), &vehicle); err != nil {
		return nil, err
	}

	var journal Journal
	if err := readYAML(filepath.Join(dir, "journal.yaml"), &journal); err != nil {
		return nil, err
	}

	var run struct {
		ID       string   `yaml:"id"`
		Leader   string   `yaml:"leader"`
		Progress Progress `yaml:"progress"`
	}
	if err := readYAML(filepath.Join(dir, "run.yaml"), &run); err != nil {
		return nil, err
	}

	return &Session{
		ID:       run.ID,
		Leader:   run.Leader,
		Trail:    &trail,
		Vehicle:  &vehicle,
		Progress: run.Progress,
		Journal:  journal,
	}, nil
}

func ListSessions() ([]string, error) {
	if _, err := os.Stat(SaveDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(SaveDir)
	if err != nil {
		return nil, err
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() {
			// trail.yaml is the marker for a valid session.
			trailPath := filepath.Join(SaveDir, entry.Name(), "trail.yaml")
			if _, err := os.Stat(trailPath); err == nil {
				sessions = append(sessions, entry.Name())
			}
		}
	}
	return sessions, nil
}

// LoadTrail reads an authored trail from a yaml file, for playing routes
// other than the builtin one.
func LoadTrail(path string) (*Trail, error) {
	var trail Trail
	if err := readYAML(path, &trail); err != nil {
		return nil, err
	}
	return &trail, nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}
