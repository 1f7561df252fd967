package repository

import (
	"context"

	"tipovacka/scoring"

	"gorm.io/gorm"
)

// ScorerResult records whether a scorer tipped by at least one user scored in the
// match. There is one row per distinct tipped scorer, not per user.
type ScorerResult struct {
	ID             int     `gorm:"primaryKey"`
	MatchID        int     `gorm:"not null;index"`
	ScorerPlayerID *int    `gorm:"null"`
	ScorerName     string  `gorm:"not null"`
	ScorerTeam     *string `gorm:"null"`
	DidScore       bool    `gorm:"not null"`
}

func (s *ScorerResult) Scorer() scoring.ScorerIdentity {
	identity := scoring.ScorerIdentity{PlayerID: s.ScorerPlayerID, Name: s.ScorerName}
	if s.ScorerTeam != nil {
		identity.Team = *s.ScorerTeam
	}
	return identity
}

type ScorerResultRepository struct {
	DB *gorm.DB
}

func NewScorerResultRepository(db *gorm.DB) *ScorerResultRepository {
	return &ScorerResultRepository{DB: db}
}

func (r *ScorerResultRepository) GetScorerResults(ctx context.Context, matchId int) ([]*ScorerResult, error) {
	results := make([]*ScorerResult, 0)
	result := r.DB.WithContext(ctx).Where("match_id = ?", matchId).Order("scorer_name").Find(&results)
	if result.Error != nil {
		return nil, classify(result.Error, "scorer results of match %d", matchId)
	}
	return results, nil
}

// ReplaceScorerResults swaps all rows of the match for results in one transaction.
func (r *ScorerResultRepository) ReplaceScorerResults(ctx context.Context, matchId int, results []*ScorerResult) error {
	defer observe("ReplaceScorerResults")()
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", matchId).Delete(&ScorerResult{}).Error; err != nil {
			return err
		}
		if len(results) == 0 {
			return nil
		}
		for _, result := range results {
			result.ID = 0
			result.MatchID = matchId
		}
		return tx.CreateInBatches(results, len(results)).Error
	})
	return classify(err, "replace scorer results of match %d", matchId)
}

func (r *ScorerResultRepository) DeleteScorerResults(ctx context.Context, matchId int) error {
	result := r.DB.WithContext(ctx).Where("match_id = ?", matchId).Delete(&ScorerResult{})
	return classify(result.Error, "delete scorer results of match %d", matchId)
}
