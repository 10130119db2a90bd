// Package store keeps integer scores in a small YAML file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirName  = "gh-color-switch"
	fileName = "scores.yml"
)

// DefaultPath returns the scores file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// File is a key/integer store backed by a YAML file. Every write is saved
// immediately.
type File struct {
	path   string
	scores map[string]int
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("scores file path is empty")
	}
	f := &File{path: path, scores: map[string]int{}}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}

	var scores map[string]int
	if err := yaml.Unmarshal(b, &scores); err != nil {
		return nil, &ParseError{Path: path, cause: err}
	}
	for k, v := range scores {
		f.scores[k] = v
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Int(key string) int {
	return f.scores[key]
}

// SetInt stores v and saves the file. A failed save is logged and otherwise
// ignored; the value stays in memory for the rest of the run.
func (f *File) SetInt(key string, v int) {
	f.scores[key] = v
	if err := f.Save(); err != nil {
		log.Printf("store: %v", err)
	}
}

// Save writes the file atomically, creating its directory if needed.
func (f *File) Save() error {
	b, err := yaml.Marshal(f.scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create scores directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("failed to write scores file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write scores file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write scores file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to write scores file: %w", err)
	}
	return nil
}
