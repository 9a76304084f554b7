package models

import "gorm.io/gorm"

// Preference is a single persisted setting for an anonymous visitor.
type Preference struct {
	gorm.Model
	VisitorID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_preferences_visitor_name"`
	Name      string `gorm:"type:varchar(64);not null;uniqueIndex:idx_preferences_visitor_name"`
	Value     string `gorm:"type:varchar(255);not null"`
}
