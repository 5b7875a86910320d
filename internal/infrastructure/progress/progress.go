// Package progress persists the player's current level between runs.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FirstLevel is the level a new save starts on
const FirstLevel = 1

// Data is the on-disk save format
type Data struct {
	Level int `json:"level"`
}

// Store reads and writes the current level to a JSON file.
// A Store with an empty path keeps progress in memory only.
type Store struct {
	path  string
	level int
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path, level: FirstLevel}
}

// Path returns the save file path
func (s *Store) Path() string {
	return s.path
}

// Level returns the current level
func (s *Store) Level() int {
	return s.level
}

// Set changes the current level without saving
func (s *Store) Set(level int) {
	if level < FirstLevel {
		level = FirstLevel
	}
	s.level = level
}

// Load reads the save file. A missing file leaves the store on FirstLevel.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}

	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.level = FirstLevel
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open save: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return fmt.Errorf("failed to decode save: %w", err)
	}
	s.Set(data.Level)
	return nil
}

// Save writes the current level to the save file
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create save dir: %w", err)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create save: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Data{Level: s.level}); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	return nil
}

// Advance moves to level next and saves
func (s *Store) Advance(next int) error {
	s.Set(next)
	return s.Save()
}
