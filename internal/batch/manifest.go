package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one file in the output manifest.
type ManifestEntry struct {
	File    string         `json:"file"`
	Version uint32         `json:"version"`
	Records map[string]int `json:"records"`
	Files   []string       `json:"files,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// WriteManifest writes the results as indented JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			File:    r.File,
			Version: r.Version,
			Records: r.Records,
			Files:   r.Files,
			Error:   r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
