package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile carries the cached point aggregate read by the leaderboard.
type Profile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"not null"`
	DisplayName *string   `gorm:"null"`
	Points      int       `gorm:"not null;default:0"`
	IsAdmin     bool      `gorm:"not null;default:false"`
}

func (p *Profile) Name() string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return p.Email
}

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userId uuid.UUID) (*Profile, error) {
	profile := &Profile{}
	result := r.DB.WithContext(ctx).Where("user_id = ?", userId).First(profile)
	if result.Error != nil {
		return nil, classify(result.Error, "profile %s", userId)
	}
	return profile, nil
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *Profile) error {
	result := r.DB.WithContext(ctx).Omit("points", "is_admin").Create(profile)
	return classify(result.Error, "create profile %s", profile.UserID)
}

func (r *ProfileRepository) GetAllProfiles(ctx context.Context) ([]*Profile, error) {
	defer observe("GetAllProfiles")()
	profiles := make([]*Profile, 0)
	result := r.DB.WithContext(ctx).Order("points DESC, email").Find(&profiles)
	if result.Error != nil {
		return nil, classify(result.Error, "list profiles")
	}
	return profiles, nil
}

func (r *ProfileRepository) UpdatePoints(ctx context.Context, userId uuid.UUID, points int) error {
	defer observe("UpdateProfilePoints")()
	result := r.DB.WithContext(ctx).Model(&Profile{}).Where("user_id = ?", userId).Update("points", points)
	return notFoundIfNone(result, "points of profile %s", userId)
}
