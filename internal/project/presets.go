package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/GridDash/internal/model"
)

// DefaultPresetPath returns the default file path for the preset store.
// This is located at ~/.griddash/presets.json.
func DefaultPresetPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".griddash")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.json"), nil
}

// SavePresets writes the preset store to a JSON file.
func SavePresets(path string, store model.PresetStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads a preset store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadPresets(path string) (model.PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPresetStore(), nil
		}
		return model.PresetStore{}, err
	}
	var store model.PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.PresetStore{}, err
	}
	if store.Presets == nil {
		store.Presets = []model.BoardPreset{}
	}
	return store, nil
}

// LoadDefaultPresets loads presets from the default path.
func LoadDefaultPresets() (model.PresetStore, error) {
	path, err := DefaultPresetPath()
	if err != nil {
		return model.NewPresetStore(), err
	}
	return LoadPresets(path)
}

// SaveDefaultPresets saves presets to the default path.
func SaveDefaultPresets(store model.PresetStore) error {
	path, err := DefaultPresetPath()
	if err != nil {
		return err
	}
	return SavePresets(path, store)
}
