package mods_test

import (
	"testing"

	"github.com/arthur-debert/modgraft/pkg/mods"
	"github.com/stretchr/testify/assert"
)

func TestFinalizeFromManifestClassification(t *testing.T) {
	tests := []struct {
		name          string
		record        mods.Record
		wantVoicePack bool
		wantLivery    bool
		wantMission   bool
		wantAddon     bool
	}{
		{
			name:          "voicepack via tag",
			record:        mods.Record{ID: "vp1", Category: "Audio", Tags: []string{"VoicePack"}},
			wantVoicePack: true,
		},
		{
			name:          "voicepack via category substring",
			record:        mods.Record{ID: "vp2", Category: "Voice Lines"},
			wantVoicePack: true,
		},
		{
			name:          "voicepack via description marker",
			record:        mods.Record{ID: "vp3", Category: "misc", Description: "Adds new chatter [Voice Pack] for ATC"},
			wantVoicePack: true,
		},
		{
			name:       "livery via tag",
			record:     mods.Record{ID: "liv1", Category: "skins", Tags: []string{"Livery"}},
			wantLivery: true,
		},
		{
			name:       "livery via category substring",
			record:     mods.Record{ID: "liv2", Category: "Livery Pack"},
			wantLivery: true,
		},
		{
			name:   "livery needs the full substring",
			record: mods.Record{ID: "liv3", Category: "Liveries"},
		},
		{
			name:        "mission via tag",
			record:      mods.Record{ID: "m1", Tags: []string{"mission"}},
			wantMission: true,
		},
		{
			name:      "addon via exact category",
			record:    mods.Record{ID: "a1", Category: "Addon"},
			wantAddon: true,
		},
		{
			name:   "addon requires exact category match",
			record: mods.Record{ID: "a2", Category: "addons"},
		},
		{
			name:   "no signals yields all false",
			record: mods.Record{ID: "plain", Category: "plugin", Tags: []string{"gameplay"}},
		},
		{
			name: "all signals checked without early exit",
			record: mods.Record{
				ID:       "multi",
				Category: "voice missions",
				Tags:     []string{"livery"},
			},
			wantVoicePack: true,
			wantLivery:    true,
			wantMission:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.record.FinalizeFromManifest()

			assert.Equal(t, tt.wantVoicePack, tt.record.IsVoicePack, "IsVoicePack")
			assert.Equal(t, tt.wantLivery, tt.record.IsLivery, "IsLivery")
			assert.Equal(t, tt.wantMission, tt.record.IsMission, "IsMission")
			assert.Equal(t, tt.wantAddon, tt.record.IsAddon, "IsAddon")
		})
	}
}

func TestFinalizeFromManifestDefaults(t *testing.T) {
	t.Run("blank name defaults to id", func(t *testing.T) {
		r := mods.Record{ID: "some-mod", Name: "  "}
		r.FinalizeFromManifest()
		assert.Equal(t, "some-mod", r.Name)
	})

	t.Run("explicit name kept", func(t *testing.T) {
		r := mods.Record{ID: "some-mod", Name: "Some Mod"}
		r.FinalizeFromManifest()
		assert.Equal(t, "Some Mod", r.Name)
	})

	t.Run("absent latest version defaults to version", func(t *testing.T) {
		r := mods.Record{ID: "m", Version: "1.2.0"}
		r.FinalizeFromManifest()
		assert.Equal(t, "1.2.0", r.LatestVersion)
		assert.False(t, r.HasUpdate)
	})
}

func TestFinalizeFromManifestHashClearing(t *testing.T) {
	t.Run("hash cleared for voicepack", func(t *testing.T) {
		r := mods.Record{
			ID:            "vp1",
			Category:      "Audio",
			Tags:          []string{"VoicePack"},
			Version:       "1.0",
			LatestVersion: "1.1",
			ExpectedHash:  "abc123",
		}
		r.FinalizeFromManifest()

		assert.True(t, r.IsVoicePack)
		assert.False(t, r.ShouldVerifyHash())
		assert.Empty(t, r.ExpectedHash)
		assert.True(t, r.HasUpdate)
	})

	t.Run("hash kept for plain plugin", func(t *testing.T) {
		r := mods.Record{ID: "p1", Category: "plugin", ExpectedHash: "abc123"}
		r.FinalizeFromManifest()

		assert.True(t, r.ShouldVerifyHash())
		assert.Equal(t, "abc123", r.ExpectedHash)
	})
}

func TestFinalizeFromManifestUpdateFlag(t *testing.T) {
	t.Run("newer latest version flags update", func(t *testing.T) {
		r := mods.Record{ID: "m", Version: "1.2.0", LatestVersion: "1.3.0"}
		r.FinalizeFromManifest()
		assert.True(t, r.HasUpdate)
	})

	t.Run("equal versions clear update", func(t *testing.T) {
		r := mods.Record{ID: "m", Version: "1.2.0", LatestVersion: "1.2.0", HasUpdate: true}
		r.FinalizeFromManifest()
		assert.False(t, r.HasUpdate)
	})

	t.Run("blank version leaves flag unchanged", func(t *testing.T) {
		r := mods.Record{ID: "m", Version: "", LatestVersion: "", HasUpdate: true}
		r.FinalizeFromManifest()
		assert.True(t, r.HasUpdate)
	})

	t.Run("non numeric difference flags update", func(t *testing.T) {
		r := mods.Record{ID: "m", Version: "nightly", LatestVersion: "weekly"}
		r.FinalizeFromManifest()
		assert.True(t, r.HasUpdate)
	})

	t.Run("refinalize after download clears update", func(t *testing.T) {
		r := mods.Record{ID: "m", Version: "1.0", LatestVersion: "1.1"}
		r.FinalizeFromManifest()
		assert.True(t, r.HasUpdate)

		r.Version = "1.1"
		r.FinalizeFromManifest()
		assert.False(t, r.HasUpdate)
	})
}

func TestCanUpdate(t *testing.T) {
	r := mods.Record{ID: "m", Version: "1.0", LatestVersion: "1.1"}
	r.FinalizeFromManifest()
	assert.True(t, r.CanUpdate())

	r.IsDownloading = true
	assert.False(t, r.CanUpdate())
}
