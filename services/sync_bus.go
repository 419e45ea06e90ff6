package services

import (
	"log"

	"github.com/gloverronan/HealthOS/models"

	"gorm.io/gorm"
)

type syncDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _sync syncDeps

func InitSyncDeps(db *gorm.DB, rt *RealtimeHub) {
	_sync = syncDeps{db: db, rt: rt}
}

// CollectionSnapshot loads the full current contents of one log
// collection, ordered newest first by server-assigned timestamp with the
// row id as tie-break for writes sharing a timestamp.
func CollectionSnapshot(db *gorm.DB, userID uint, collection string) (any, error) {
	switch collection {
	case CollectionFood:
		var logs []models.FoodLog
		err := db.Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			Find(&logs).Error
		return logs, err
	case CollectionGym:
		var logs []models.GymLog
		err := db.Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			Find(&logs).Error
		return logs, err
	case CollectionCardio:
		var logs []models.CardioLog
		err := db.Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			Find(&logs).Error
		return logs, err
	}
	return nil, gorm.ErrRecordNotFound
}

// PublishSnapshot pushes the current snapshot of a collection to all of
// the user's connected devices. Safe to call anywhere; a write's effect
// reaches the writer through this echo, not the write response.
func PublishSnapshot(userID uint, collection string) {
	if _sync.db == nil || _sync.rt == nil {
		return // not initialized
	}
	docs, err := CollectionSnapshot(_sync.db, userID, collection)
	if err != nil {
		log.Printf("snapshot load failed for %s: %v", collection, err)
		return
	}
	_sync.rt.BroadcastSnapshot(userID, collection, docs)
}
