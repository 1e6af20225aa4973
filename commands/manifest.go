package commands

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry records one uploaded photo: its resolved file name and the
// rendition size tag it was backed up at.
type ManifestEntry struct {
	FileName string `json:"file_name"`
	Size     string `json:"size"`
}

// writeManifest persists the full manifest as indented JSON, overwriting any
// prior content at path.
func writeManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// readManifest loads a manifest written by writeManifest.
func readManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	return entries, nil
}
