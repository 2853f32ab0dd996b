package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/seqlab/sheetkit/internal/defs"
	"github.com/seqlab/sheetkit/internal/fsutil"
)

// managerState represents the lifecycle state of the ConfigManager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
)

// ConfigManager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu             sync.RWMutex
	config         *Config
	path           string
	state          managerState
	loader         *Loader
	loadedSections map[string]bool
}

// NewConfigManager creates a new ConfigManager instance in uninitialized state.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load resolves the config file, merges it over compiled defaults, applies
// environment variable overrides and validates the result.
//
// The file is explicitPath when set, else $SHEETKIT_CONFIG, else
// workdir/sheetkit.yaml. Only the last one may be absent.
func (m *ConfigManager) Load(workdir, explicitPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, required := ResolvePath(workdir, explicitPath)
	cfg, err := m.loader.Load(path, required)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	m.loadedSections = m.loader.LoadedSections()

	// Environment variables beat file values.
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.path = path
	m.state = stateInitialized
	return cfg, nil
}

// ResolvePath returns the config file to read and whether it must exist.
func ResolvePath(workdir, explicitPath string) (string, bool) {
	if explicitPath != "" {
		return filepath.Clean(explicitPath), true
	}
	if envPath := os.Getenv(defs.EnvConfig); envPath != "" {
		return filepath.Clean(envPath), true
	}
	return filepath.Join(filepath.Clean(workdir), defs.ConfigYAML), false
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *ConfigManager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Path returns the config file consulted by the last Load, whether or not
// it existed.
func (m *ConfigManager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// LoadedSections reports which top-level sections came from the file.
func (m *ConfigManager) LoadedSections() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.loadedSections))
	maps.Copy(out, m.loadedSections)
	return out
}

// UseDefaults replaces the in-memory configuration with compiled defaults,
// ignoring files and environment.
func (m *ConfigManager) UseDefaults() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = NewDefaultConfig()
	m.loadedSections = map[string]bool{}
	m.path = ""
	m.state = stateInitialized
}

// Save writes the current configuration to path atomically using a temp
// file and os.Rename. Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}
	data, err := Marshal(m.config)
	if err != nil {
		return err
	}
	if err := fsutil.AtomicWrite(path, data, 0o644); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if dir := os.Getenv(defs.EnvAnalysisDir); dir != "" {
		cfg.Split.AnalysisDir = dir
	}
	if section := os.Getenv(defs.EnvSection); section != "" {
		cfg.Split.Section = section
	}
	if ext := os.Getenv(defs.EnvReadExt); ext != "" {
		cfg.Split.ReadExtension = ext
	}
	if level := os.Getenv(defs.EnvLogLevel); level != "" {
		cfg.System.LogLevel = strings.ToLower(level)
	}
	if envTrue(defs.EnvNoColor) {
		cfg.System.NoColor = true
	}
	if envTrue(defs.EnvNonInteractive) {
		cfg.System.NonInteractive = true
	}
}

func envTrue(name string) bool {
	v := os.Getenv(name)
	return v == "true" || v == "1"
}
