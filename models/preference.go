package models

import "gorm.io/gorm"

// Preference is a flat per-user key-value entry for lightweight device
// settings: the insight cache, one-time "seen" flags, a mirror of the AI
// key. Reads fall back to defaults when anything goes wrong.
type Preference struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_pref"`
	Key    string `gorm:"size:64;not null;uniqueIndex:idx_user_pref"`
	Value  string `gorm:"type:text"`
}
