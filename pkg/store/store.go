// Package store persists mod records in a local SQLite database.
//
// Records are keyed by mod id. Derived classification and update flags are
// excluded from persistence and recomputed on every load, so the database
// only ever holds raw manifest and installation state.
package store

import (
	stderrors "errors"

	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/arthur-debert/modgraft/pkg/logging"
	"github.com/arthur-debert/modgraft/pkg/mods"
)

// Store wraps the database handle.
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// Open opens (creating if needed) the database at path and migrates the
// record schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(gormlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreOpen, "cannot open database %s", path)
	}

	if err := db.AutoMigrate(&mods.Record{}); err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreOpen, "schema migration failed")
	}

	logger := logging.GetLogger("store")
	logger.Debug().Str("path", path).Msg("Store opened")

	return &Store{db: db, logger: logger}, nil
}

// Save upserts a record by id.
func (s *Store) Save(r *mods.Record) error {
	if r.ID == "" {
		return errors.New(errors.ErrInvalidInput, "record id must be non-blank")
	}
	if err := s.db.Save(r).Error; err != nil {
		return errors.Wrapf(err, errors.ErrStoreQuery, "failed to save mod %s", r.ID)
	}
	return nil
}

// Get loads one record by id, with derived state recomputed.
func (s *Store) Get(id string) (*mods.Record, error) {
	var r mods.Record
	err := s.db.First(&r, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Newf(errors.ErrModNotFound, "no mod with id %s", id)
		}
		return nil, errors.Wrapf(err, errors.ErrStoreQuery, "failed to load mod %s", id)
	}
	r.FinalizeFromManifest()
	return &r, nil
}

// List loads every record ordered by id, with derived state recomputed.
func (s *Store) List() ([]mods.Record, error) {
	var records []mods.Record
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreQuery, "failed to list mods")
	}
	for i := range records {
		records[i].FinalizeFromManifest()
	}
	return records, nil
}

// Delete removes a record by id. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) error {
	if err := s.db.Delete(&mods.Record{}, "id = ?", id).Error; err != nil {
		return errors.Wrapf(err, errors.ErrStoreQuery, "failed to delete mod %s", id)
	}
	return nil
}
