package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/serialapi"
)

// Settings is what the panel remembers between runs.
type Settings struct {
	API   serialapi.Endpoint     `toml:"api"`
	Cue   hardware.CueSettings   `toml:"cue"`
	Laser hardware.LaserSettings `toml:"laser"`
}

func DefaultSettings() Settings {
	cfg := serialapi.DefaultConfig()
	return Settings{
		API:   cfg.Endpoint(),
		Cue:   hardware.DefaultCueSettings(),
		Laser: hardware.DefaultLaserSettings(),
	}
}

// SettingsStore handles persistent storage of the panel settings
type SettingsStore struct {
	filepath string
}

// NewSettingsStore creates a store under the XDG config directory
func NewSettingsStore() (*SettingsStore, error) {
	path, err := xdg.ConfigFile("hwpanel/settings.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config file path: %w", err)
	}
	return &SettingsStore{filepath: path}, nil
}

// NewSettingsStoreAt creates a store backed by an explicit file.
func NewSettingsStoreAt(path string) *SettingsStore {
	return &SettingsStore{filepath: path}
}

func (s *SettingsStore) Path() string {
	return s.filepath
}

// Load reads the stored settings. A missing file yields the defaults with no
// error. Values outside the widget ranges are clamped.
func (s *SettingsStore) Load() (Settings, error) {
	out := DefaultSettings()
	data, err := os.ReadFile(s.filepath)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	if err := toml.Unmarshal(data, &out); err != nil {
		return DefaultSettings(), fmt.Errorf("parse %s: %w", s.filepath, err)
	}
	out.Cue = out.Cue.Clamped()
	out.Laser = out.Laser.Clamped()
	return out, nil
}

// Save writes the settings to disk
func (s *SettingsStore) Save(settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.filepath), 0o755); err != nil {
		return err
	}
	tmp := s.filepath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.filepath)
}
