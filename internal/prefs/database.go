package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vitrine/models"
)

// Database stores preferences as rows keyed by visitor and name.
type Database struct {
	db        *gorm.DB
	visitorID string
}

// NewDatabase scopes a store to visitorID.
func NewDatabase(db *gorm.DB, visitorID string) (*Database, error) {
	if db == nil {
		return nil, gorm.ErrInvalidDB
	}
	if strings.TrimSpace(visitorID) == "" {
		return nil, errors.New("prefs: visitor id must not be empty")
	}
	return &Database{db: db, visitorID: visitorID}, nil
}

func (d *Database) Get(ctx context.Context, key string) (string, bool, error) {
	var pref models.Preference
	err := d.db.WithContext(ctx).
		Where("visitor_id = ? AND name = ?", d.visitorID, key).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load preference %q: %w", key, err)
	}
	return pref.Value, true, nil
}

func (d *Database) Set(ctx context.Context, key, value string) error {
	pref := models.Preference{VisitorID: d.visitorID, Name: key, Value: value}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}
