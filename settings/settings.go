// Package settings persists user preferences between runs. Every failure here
// is logged as a warning and never stops the game.
package settings

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	log "github.com/sirupsen/logrus"
)

// Saved represents the settings data stored on disk
type Saved struct {
	Fullscreen   bool   `json:"fullscreen"`
	DebugOverlay bool   `json:"debugOverlay"`
	Level        string `json:"level"`
	Players      int    `json:"players"`
}

// Store reads and writes one settings item.
type Store struct {
	manager *gdata.Manager
	key     string
}

// Open initializes the gdata manager for settings storage. A nil Store is
// valid and behaves as an empty store that discards writes.
func Open(appName, key string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.WithError(err).Warn("could not initialize persistence")
		return nil, err
	}
	return &Store{manager: m, key: key}, nil
}

// Load returns the saved settings, or nil when nothing was saved yet.
func (s *Store) Load() (*Saved, error) {
	if s == nil || s.manager == nil {
		return nil, nil
	}

	data, err := s.manager.LoadItem(s.key)
	if err != nil {
		log.WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}
	return Decode(data)
}

// Save writes settings to disk
func (s *Store) Save(saved *Saved) error {
	if s == nil || s.manager == nil || saved == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		log.WithError(err).Warn("could not serialize settings")
		return err
	}
	if err := s.manager.SaveItem(s.key, data); err != nil {
		log.WithError(err).Warn("could not save settings")
		return err
	}
	return nil
}

// Decode parses stored settings.
func Decode(data []byte) (*Saved, error) {
	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		log.WithError(err).Warn("could not parse saved settings")
		return nil, err
	}
	return &saved, nil
}
