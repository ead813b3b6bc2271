package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/arbiter/internal/config"
	domainconfig "github.com/trebuchet-org/arbiter/internal/domain/config"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// PreferenceStoreAdapter implements PreferenceStore using the file system
type PreferenceStoreAdapter struct {
	path string
}

// NewPreferenceStoreAdapter creates a new PreferenceStoreAdapter
func NewPreferenceStoreAdapter(cfg *config.RuntimeConfig) *PreferenceStoreAdapter {
	return &PreferenceStoreAdapter{
		path: filepath.Join(cfg.DataDir, "preferences.json"),
	}
}

// Exists checks if the preferences file exists
func (s *PreferenceStoreAdapter) Exists() bool {
	_, err := os.Stat(s.path)
	return !os.IsNotExist(err)
}

// Load reads the preferences, returning defaults when none were saved
func (s *PreferenceStoreAdapter) Load(ctx context.Context) (*domainconfig.Preferences, error) {
	if !s.Exists() {
		return domainconfig.DefaultPreferences(), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	var prefs domainconfig.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	return &prefs, nil
}

// Save writes the preferences to disk
func (s *PreferenceStoreAdapter) Save(ctx context.Context, prefs *domainconfig.Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}

// GetPath returns the path to the preferences file
func (s *PreferenceStoreAdapter) GetPath() string {
	return s.path
}

var _ usecase.PreferenceStore = (*PreferenceStoreAdapter)(nil)
