// Package mods defines the normalized mod entity and its derived state.
//
// A Record is built from a remote manifest entry, persisted by the store, and
// finalized whenever its raw fields change. Classification and update flags
// are never written by callers directly - FinalizeFromManifest recomputes
// them as a pure function of the stored fields.
package mods

import (
	"strings"

	"github.com/arthur-debert/modgraft/pkg/version"
)

// Record represents one mod's identity, classification, and installation
// state. ID is the stable identity key and must not change after creation.
type Record struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Authors     []string `gorm:"serializer:json" json:"authors"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
	Category    string   `json:"category"`
	InfoURL     string   `json:"infoUrl"`

	Version       string `json:"version"`
	LatestVersion string `json:"latestVersion"`

	DownloadURL  string   `json:"downloadUrl"`
	ExpectedHash string   `json:"expectedHash"`
	Dependencies []string `gorm:"serializer:json" json:"dependencies"`

	IsEnabled        bool    `json:"isEnabled"`
	IsInstalled      bool    `json:"isInstalled"`
	IsDownloading    bool    `gorm:"-" json:"-"`
	DownloadProgress float64 `gorm:"-" json:"-"`

	// Derived classification, recomputed by FinalizeFromManifest and never
	// persisted as authoritative.
	IsVoicePack bool `gorm:"-" json:"-"`
	IsLivery    bool `gorm:"-" json:"-"`
	IsMission   bool `gorm:"-" json:"-"`
	IsAddon     bool `gorm:"-" json:"-"`
	HasUpdate   bool `gorm:"-" json:"-"`
}

// FinalizeFromManifest recomputes all derived state from the raw fields.
// It mutates the record in place as one atomic recomputation: defaults for
// blank name and absent latest version, tag/category/description driven
// classification, hash clearing when hashing is inapplicable, and update
// detection via version comparison. Malformed input never errors -
// classification degrades to false when no signal is present.
func (r *Record) FinalizeFromManifest() {
	if strings.TrimSpace(r.Name) == "" {
		r.Name = r.ID
	}
	if r.LatestVersion == "" {
		r.LatestVersion = r.Version
	}

	tags := make(map[string]bool, len(r.Tags))
	for _, t := range r.Tags {
		tags[strings.ToLower(strings.TrimSpace(t))] = true
	}
	category := strings.ToLower(r.Category)
	description := strings.ToLower(r.Description)

	// Tags take precedence but every signal is checked - no early exit.
	r.IsVoicePack = tags["voicepack"] ||
		strings.Contains(category, "voice") ||
		strings.Contains(description, "[voice pack]")
	r.IsLivery = tags["livery"] || strings.Contains(category, "livery")
	r.IsMission = tags["mission"] || strings.Contains(category, "mission")
	r.IsAddon = category == "addon"

	if !r.ShouldVerifyHash() {
		r.ExpectedHash = ""
	}

	// Only recompute when both sides are usable; a blank version on either
	// side leaves the previous flag in place rather than resetting it.
	if r.Version != "" && r.LatestVersion != "" {
		r.HasUpdate = version.Compare(r.LatestVersion, r.Version) != version.Equal
	}
}

// ShouldVerifyHash reports whether a downloaded archive for this mod should
// be hash-checked. Voice packs, liveries, missions, and addons are exempt.
func (r *Record) ShouldVerifyHash() bool {
	return !(r.IsVoicePack || r.IsLivery || r.IsMission || r.IsAddon)
}

// CanUpdate reports whether an update can start right now.
func (r *Record) CanUpdate() bool {
	return r.HasUpdate && !r.IsDownloading
}
