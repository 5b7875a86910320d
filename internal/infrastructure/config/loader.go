package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds the tuning and the list of available levels
type GameConfig struct {
	Tuning *Tuning
	Levels []int
}

// Loader loads tuning (JSON) and level (YAML) files using fs.FS interface
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

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.json on top of DefaultTuning
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	cfg := DefaultTuning()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	return cfg, nil
}

// LevelPath returns the path of level n relative to the loader root
func LevelPath(n int) string {
	return fmt.Sprintf("levels/level%d.yaml", n)
}

// LoadLevel loads and validates levels/levelN.yaml
func (l *Loader) LoadLevel(n int) (*LevelConfig, error) {
	p := LevelPath(n)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %d: %w", n, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", n, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate level %d: %w", n, err)
	}

	return &cfg, nil
}

// LevelNumbers lists the level numbers present under levels/, ascending
func (l *Loader) LevelNumbers() ([]int, error) {
	matches, err := fs.Glob(l.fsys, "levels/level*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	var nums []int
	for _, m := range matches {
		if n, ok := ParseLevelNumber(m); ok {
			nums = append(nums, n)
		}
	}
	slices.Sort(nums)
	return nums, nil
}

// ParseLevelNumber extracts N from a path ending in levelN.yaml
func ParseLevelNumber(p string) (int, bool) {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	if !strings.HasPrefix(base, "level") || !strings.HasSuffix(base, ".yaml") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(base, "level"), ".yaml"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// LoadAll loads the tuning and validates every level
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	levels, err := l.LevelNumbers()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("failed to find levels: %w", fs.ErrNotExist)
	}
	for _, n := range levels {
		if _, err := l.LoadLevel(n); err != nil {
			return nil, err
		}
	}

	return &GameConfig{
		Tuning: tuning,
		Levels: levels,
	}, nil
}
