// Package manifest reads the remote-described mod catalog and normalizes its
// entries into mod records.
package manifest

import (
	"os"

	"github.com/goccy/go-json"

	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/arthur-debert/modgraft/pkg/logging"
	"github.com/arthur-debert/modgraft/pkg/mods"
)

// Entry is one raw catalog entry as published, prior to normalization.
// Optional fields take the documented defaults when absent.
type Entry struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"displayName"`
	Description  string   `json:"description"`
	Authors      []string `json:"authors"`
	Tags         []string `json:"tags"`
	InfoURL      string   `json:"infoUrl"`
	Category     string   `json:"category"`
	Version      string   `json:"version"`
	DownloadURL  string   `json:"downloadUrl"`
	ExpectedHash string   `json:"expectedHash"`
	Dependencies []string `json:"dependencies"`
}

// Record normalizes the entry into a finalized mod record.
func (e Entry) Record() mods.Record {
	r := mods.Record{
		ID:           e.ID,
		Name:         e.DisplayName,
		Description:  e.Description,
		Authors:      e.Authors,
		Tags:         e.Tags,
		InfoURL:      e.InfoURL,
		Category:     e.Category,
		Version:      e.Version,
		DownloadURL:  e.DownloadURL,
		ExpectedHash: e.ExpectedHash,
		Dependencies: e.Dependencies,
	}
	r.FinalizeFromManifest()
	return r
}

// Parse decodes a catalog payload (a JSON array of entries) into finalized
// mod records. Entries without an id are dropped with a warning rather than
// failing the whole catalog.
func Parse(data []byte) ([]mods.Record, error) {
	logger := logging.GetLogger("manifest")

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "malformed manifest payload")
	}

	records := make([]mods.Record, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			logger.Warn().Str("displayName", e.DisplayName).Msg("Skipping manifest entry without id")
			continue
		}
		records = append(records, e.Record())
	}

	logger.Debug().Int("entries", len(entries)).Int("records", len(records)).Msg("Manifest parsed")
	return records, nil
}

// ParseFile reads and decodes a catalog file.
func ParseFile(path string) ([]mods.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest %s", path)
	}
	return Parse(data)
}
