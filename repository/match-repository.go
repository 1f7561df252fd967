package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Match struct {
	ID             int        `gorm:"primaryKey"`
	HomeTeam       string     `gorm:"not null"`
	AwayTeam       string     `gorm:"not null"`
	StartsAt       time.Time  `gorm:"not null;index"`
	FinalHomeScore *int       `gorm:"null"`
	FinalAwayScore *int       `gorm:"null"`
	EvaluatedAt    *time.Time `gorm:"null"`
}

func (m *Match) IsEvaluated() bool {
	return m.FinalHomeScore != nil && m.FinalAwayScore != nil && m.EvaluatedAt != nil
}

// IsLocked reports whether predictions for the match are closed at now.
func (m *Match) IsLocked(now time.Time) bool {
	return !now.Before(m.StartsAt)
}

func (m *Match) HasTeam(team string) bool {
	return team == m.HomeTeam || team == m.AwayTeam
}

type MatchRepository struct {
	DB *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{DB: db}
}

func (r *MatchRepository) GetMatchById(ctx context.Context, matchId int) (*Match, error) {
	defer observe("GetMatchById")()
	match := &Match{}
	result := r.DB.WithContext(ctx).First(match, matchId)
	if result.Error != nil {
		return nil, classify(result.Error, "match %d", matchId)
	}
	return match, nil
}

func (r *MatchRepository) GetAllMatches(ctx context.Context) ([]*Match, error) {
	defer observe("GetAllMatches")()
	matches := make([]*Match, 0)
	result := r.DB.WithContext(ctx).Order("starts_at, id").Find(&matches)
	if result.Error != nil {
		return nil, classify(result.Error, "list matches")
	}
	return matches, nil
}

func (r *MatchRepository) SaveMatch(ctx context.Context, match *Match) (*Match, error) {
	result := r.DB.WithContext(ctx).Save(match)
	if result.Error != nil {
		return nil, classify(result.Error, "save match")
	}
	return match, nil
}

// SetFinalScore stores both final scores together with the evaluation timestamp.
func (r *MatchRepository) SetFinalScore(ctx context.Context, matchId int, home int, away int, evaluatedAt time.Time) error {
	defer observe("SetFinalScore")()
	result := r.DB.WithContext(ctx).Model(&Match{}).Where("id = ?", matchId).Updates(map[string]any{
		"final_home_score": home,
		"final_away_score": away,
		"evaluated_at":     evaluatedAt,
	})
	return notFoundIfNone(result, "set final score of match %d", matchId)
}

func (r *MatchRepository) ClearFinalScore(ctx context.Context, matchId int) error {
	defer observe("ClearFinalScore")()
	result := r.DB.WithContext(ctx).Model(&Match{}).Where("id = ?", matchId).Updates(map[string]any{
		"final_home_score": gorm.Expr("NULL"),
		"final_away_score": gorm.Expr("NULL"),
		"evaluated_at":     gorm.Expr("NULL"),
	})
	return notFoundIfNone(result, "clear final score of match %d", matchId)
}
