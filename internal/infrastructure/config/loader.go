package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads shell configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadShell loads shell.json on top of Defaults and validates the result
func (l *Loader) LoadShell() (*ShellConfig, error) {
	data, err := fs.ReadFile(l.fsys, "shell.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read shell.json: %w", err)
	}

	cfg := Defaults()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse shell.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shell.json in %s: %w", l.basePath, err)
	}

	return &cfg, nil
}
