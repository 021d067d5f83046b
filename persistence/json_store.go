package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fortress-client/models"
)

// JSONStore persists the client profile in a local JSON file.
type JSONStore struct {
	filePath string
}

// NewJSONStore creates a profile store at filePath, creating the parent
// directory and a default profile on first run.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{filePath: filePath}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create profile directory: %v", err)
		}
		if err := store.SaveProfile(models.DefaultProfile()); err != nil {
			return nil, fmt.Errorf("failed to create profile file: %v", err)
		}
	}

	return store, nil
}

// LoadProfile reads the profile from disk, filling absent fields from the
// defaults so old profiles survive new settings.
func (js *JSONStore) LoadProfile() (*models.Profile, error) {
	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return nil, err
	}

	profile := models.DefaultProfile()
	if err := json.Unmarshal(file, profile); err != nil {
		return nil, err
	}
	if profile.ScrollStep < 1 {
		profile.ScrollStep = models.DefaultProfile().ScrollStep
	}
	return profile, nil
}

// SaveProfile writes the profile to disk.
func (js *JSONStore) SaveProfile(profile *models.Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(js.filePath, data, 0644)
}

// Close is a no-op for the file-backed store.
func (js *JSONStore) Close() error {
	return nil
}
