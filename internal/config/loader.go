package config

import (
	"fmt"
	"maps"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads configuration from a single YAML file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	loadedSections map[string]bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads path and returns a Config with defaults applied for every field
// the file leaves out. A missing file yields the defaults when required is
// false and ErrConfigNotFound otherwise.
func (l *Loader) Load(path string, required bool) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// Decoding over the defaults keeps compiled values for absent keys.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err == nil {
		for k := range keys {
			l.loadedSections[k] = true
		}
	}
	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which top-level
// sections were present in the loaded file.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}
