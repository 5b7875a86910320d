package config

import (
	"fmt"
	"log"
	"slices"
	"sync"
)

// LevelSource serves validated level snapshots, caching each level until it
// is invalidated by a file change.
type LevelSource struct {
	loader *Loader

	mu    sync.Mutex
	cache map[int]*LevelConfig
}

// NewLevelSource creates a level source backed by a loader
func NewLevelSource(loader *Loader) *LevelSource {
	return &LevelSource{
		loader: loader,
		cache:  make(map[int]*LevelConfig),
	}
}

// Level returns level n. The returned snapshot must be treated as read-only.
func (s *LevelSource) Level(n int) (*LevelConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg, ok := s.cache[n]; ok {
		return cfg, nil
	}
	cfg, err := s.loader.LoadLevel(n)
	if err != nil {
		return nil, err
	}
	s.cache[n] = cfg
	return cfg, nil
}

// Numbers lists the available level numbers
func (s *LevelSource) Numbers() ([]int, error) {
	return s.loader.LevelNumbers()
}

// Next returns the level after n, wrapping to the first level after the last
func (s *LevelSource) Next(n int) (int, error) {
	nums, err := s.Numbers()
	if err != nil {
		return 0, err
	}
	if len(nums) == 0 {
		return 0, fmt.Errorf("failed to find levels in %s", s.loader.BasePath())
	}
	for _, m := range nums {
		if m > n {
			return m, nil
		}
	}
	return nums[0], nil
}

// Resolve returns n if it exists, otherwise the first level
func (s *LevelSource) Resolve(n int) (int, error) {
	nums, err := s.Numbers()
	if err != nil {
		return 0, err
	}
	if len(nums) == 0 {
		return 0, fmt.Errorf("failed to find levels in %s", s.loader.BasePath())
	}
	if slices.Contains(nums, n) {
		return n, nil
	}
	return nums[0], nil
}

// Invalidate drops level n from the cache
func (s *LevelSource) Invalidate(n int) {
	s.mu.Lock()
	delete(s.cache, n)
	s.mu.Unlock()
}

// Follow invalidates levels as the watcher reports changes.
// Returns when the watcher is closed.
func (s *LevelSource) Follow(w *Watcher) {
	for {
		select {
		case n, ok := <-w.Events:
			if !ok {
				return
			}
			s.Invalidate(n)
			log.Printf("Level %d changed on disk, reloading on next entry", n)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Level watcher error: %v", err)
		}
	}
}
