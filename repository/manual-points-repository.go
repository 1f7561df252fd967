package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManualPointsLogEntry is append-only. OldPoints and NewPoints are snapshots taken at
// write time and never feed a recomputation.
type ManualPointsLogEntry struct {
	ID           int       `gorm:"primaryKey"`
	AdminUserID  uuid.UUID `gorm:"type:uuid;not null"`
	TargetUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ChangeAmount int       `gorm:"not null"`
	OldPoints    int       `gorm:"not null"`
	NewPoints    int       `gorm:"not null"`
	Reason       *string   `gorm:"null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ManualPointsLogEntry) TableName() string {
	return "manual_points_log"
}

type ManualPointsRepository struct {
	DB *gorm.DB
}

func NewManualPointsRepository(db *gorm.DB) *ManualPointsRepository {
	return &ManualPointsRepository{DB: db}
}

func (r *ManualPointsRepository) CreateEntry(ctx context.Context, entry *ManualPointsLogEntry) error {
	result := r.DB.WithContext(ctx).Create(entry)
	return classify(result.Error, "append manual points for user %s", entry.TargetUserID)
}

func (r *ManualPointsRepository) GetLatestEntries(ctx context.Context, limit int) ([]*ManualPointsLogEntry, error) {
	entries := make([]*ManualPointsLogEntry, 0)
	result := r.DB.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, classify(result.Error, "list manual points")
	}
	return entries, nil
}

func (r *ManualPointsRepository) SumDeltasByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	defer observe("SumManualDeltas")()
	return sumByUser(r.DB.WithContext(ctx).Model(&ManualPointsLogEntry{}), "target_user_id", "change_amount", userIds)
}
