package models

import "gorm.io/gorm"

// SharedConfig is the cross-user configuration document holding the AI
// provider key and the designated admin. Readable by any authenticated
// user; the write gate compares the caller against AdminUID in the
// application layer only, which is a known trust-boundary gap carried
// over from the original design.
type SharedConfig struct {
	gorm.Model
	Key       string `gorm:"uniqueIndex;not null"` // singleton key, "shared_keys"
	GeminiKey string
	AdminUID  uint
	UpdatedBy string
}

const SharedConfigKey = "shared_keys"
