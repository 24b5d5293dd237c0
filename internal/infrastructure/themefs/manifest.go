package themefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CustomizationRecord is one applied customization. The payload is an opaque
// JSON document owned by the dashboard editor.
type CustomizationRecord struct {
	Payload   json.RawMessage `json:"payload"`
	AppliedAt time.Time       `json:"applied_at"`
}

// Manifest mirrors the installation row into the installation directory as
// theme-config.json. The database row is canonical; the manifest is a derived
// cache rebuilt after every customization write, so tooling that works
// directly on the theme tree still sees current state.
type Manifest struct {
	ThemeID        string                `json:"themeId"`
	ClientID       string                `json:"clientId"`
	StoreID        string                `json:"storeId"`
	Version        string                `json:"version"`
	Status         string                `json:"status"`
	InstalledAt    time.Time             `json:"installedAt"`
	IsActive       bool                  `json:"isActive"`
	Customizations []CustomizationRecord `json:"customizations"`
	Directories    map[string]string     `json:"directories"`
}

// WriteManifest writes the manifest atomically (temp file + rename) so a
// concurrent reader never observes a torn file.
func WriteManifest(dir string, m *Manifest) error {
	if m.Customizations == nil {
		m.Customizations = []CustomizationRecord{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".theme-config-*.json")
	if err != nil {
		return fmt.Errorf("failed to create manifest temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close manifest temp file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(dir, ManifestName)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace manifest: %w", err)
	}
	return nil
}

// ReadManifest loads theme-config.json from dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}
