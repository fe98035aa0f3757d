package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/gradebook/internal/data/dispatcher"
	"github.com/atomicstack/gradebook/internal/storage"
)

// Settings are the user preferences kept next to the tables.
type Settings struct {
	Language string `json:"language,omitempty"`
}

// LoadSettings reads the settings collection. A missing collection yields
// the zero value.
func LoadSettings(store storage.Store) (Settings, error) {
	var s Settings
	err := store.Load(dispatcher.SettingsCollection, &s)
	if errors.Is(err, storage.ErrNotFound) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}

// SaveSettings writes the settings collection.
func SaveSettings(store storage.Store, s Settings) error {
	if err := store.Save(dispatcher.SettingsCollection, s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
