// Package installer orchestrates mod installation: it resolves a mod's
// repository directory and grafts it into the game's plugin tree through the
// link manager, keeping the store's installed-state in sync.
//
// Link mutations for one mod are serialized here - one in flight per id -
// since the link manager itself provides no locking. Distinct mods can be
// installed concurrently.
package installer

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/modgraft/pkg/config"
	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/arthur-debert/modgraft/pkg/link"
	"github.com/arthur-debert/modgraft/pkg/logging"
	"github.com/arthur-debert/modgraft/pkg/manifest"
	"github.com/arthur-debert/modgraft/pkg/mods"
	"github.com/arthur-debert/modgraft/pkg/store"
)

// Installer wires the link manager, store, and configuration together.
// With DryRun set, Install and Uninstall validate and report what they
// would do but mutate neither the filesystem nor the store.
type Installer struct {
	cfg    *config.Config
	links  *link.Manager
	store  *store.Store
	logger zerolog.Logger

	// DryRun previews mutations without executing them.
	DryRun bool

	mu    sync.Mutex
	inUse map[string]*sync.Mutex
}

// New creates an Installer.
func New(cfg *config.Config, links *link.Manager, st *store.Store) *Installer {
	return &Installer{
		cfg:    cfg,
		links:  links,
		store:  st,
		logger: logging.GetLogger("installer"),
		inUse:  make(map[string]*sync.Mutex),
	}
}

// Install grafts the mod's repository directory into the plugin tree and
// marks it installed. The repository directory must already be fully
// populated; overwrite policy comes from configuration.
func (i *Installer) Install(id string) error {
	defer logging.LogDuration(time.Now(), "install")
	unlock := i.lock(id)
	defer unlock()

	record, err := i.store.Get(id)
	if err != nil {
		return err
	}

	modDir := i.cfg.ModDir(id)
	linkPath := i.cfg.LinkPath(id)

	if i.DryRun {
		i.logger.Info().
			Str("mod", id).
			Str("link", linkPath).
			Str("target", modDir).
			Msg("Dry run mode - link would be created")
		return nil
	}

	if err := i.links.Create(linkPath, modDir, i.cfg.Overwrite); err != nil {
		return err
	}

	record.IsInstalled = true
	record.IsEnabled = true
	if err := i.store.Save(record); err != nil {
		return err
	}

	i.logger.Info().Str("mod", id).Str("link", linkPath).Msg("Mod installed")
	return nil
}

// Uninstall removes the mod's link entry and marks it uninstalled. The
// repository directory behind the link is left untouched.
func (i *Installer) Uninstall(id string) error {
	unlock := i.lock(id)
	defer unlock()

	record, err := i.store.Get(id)
	if err != nil {
		return err
	}

	if i.DryRun {
		i.logger.Info().
			Str("mod", id).
			Str("link", i.cfg.LinkPath(id)).
			Msg("Dry run mode - link would be removed")
		return nil
	}

	if err := i.links.Remove(i.cfg.LinkPath(id)); err != nil {
		return err
	}

	record.IsInstalled = false
	record.IsEnabled = false
	if err := i.store.Save(record); err != nil {
		return err
	}

	i.logger.Info().Str("mod", id).Msg("Mod uninstalled")
	return nil
}

// Refresh ingests the manifest catalog into the store. Existing records keep
// their installation state and installed version; manifest fields and the
// advertised latest version are refreshed, then derived state is recomputed.
func (i *Installer) Refresh() (int, error) {
	records, err := manifest.ParseFile(i.cfg.ManifestPath)
	if err != nil {
		return 0, err
	}

	for idx := range records {
		incoming := &records[idx]

		existing, err := i.store.Get(incoming.ID)
		if err == nil {
			incoming.IsInstalled = existing.IsInstalled
			incoming.IsEnabled = existing.IsEnabled
			if existing.Version != "" {
				// The store knows what is actually on disk; the manifest
				// only advertises what is available.
				incoming.LatestVersion = incoming.Version
				incoming.Version = existing.Version
			}
			incoming.FinalizeFromManifest()
		} else if !errors.IsErrorCode(err, errors.ErrModNotFound) {
			return 0, err
		}

		if err := i.store.Save(incoming); err != nil {
			return 0, err
		}
	}

	i.logger.Info().Int("mods", len(records)).Msg("Manifest refreshed")
	return len(records), nil
}

// Status reports each stored mod together with what actually occupies its
// link path right now - the filesystem, not the store, is the source of
// truth for link state.
type Status struct {
	Record mods.Record
	Kind   link.Kind
	Target string
}

// Statuses returns the status of every stored mod ordered by id.
func (i *Installer) Statuses() ([]Status, error) {
	records, err := i.store.List()
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(records))
	for _, r := range records {
		linkPath := i.cfg.LinkPath(r.ID)
		s := Status{Record: r, Kind: i.links.Inspect(linkPath)}
		if target, ok := i.links.GetTarget(linkPath); ok {
			s.Target = target
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

// lock serializes mutations per mod id.
func (i *Installer) lock(id string) func() {
	i.mu.Lock()
	m, ok := i.inUse[id]
	if !ok {
		m = &sync.Mutex{}
		i.inUse[id] = m
	}
	i.mu.Unlock()

	m.Lock()
	return m.Unlock
}
