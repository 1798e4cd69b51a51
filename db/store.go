package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oxhq/pycov/core"
	"github.com/oxhq/pycov/models"
)

// Store persists the latest analysis record per identifier.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open connection.
func NewStore(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Save upserts the record for the result's identifier. The previous record
// for the same identifier is replaced, last writer wins.
func (s *Store) Save(r core.CoverageResult) error {
	rec, err := models.FromResult(r)
	if err != nil {
		return fmt.Errorf("encode analysis record: %w", err)
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("save analysis record: %w", err)
	}
	return nil
}

// Get loads the stored record for an identifier. The second return value is
// false when no record exists.
func (s *Store) Get(id string) (core.CoverageResult, bool, error) {
	var rec models.Analysis
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.CoverageResult{}, false, nil
	}
	if err != nil {
		return core.CoverageResult{}, false, fmt.Errorf("load analysis record: %w", err)
	}
	return rec.ToResult(), true, nil
}
