package repository

import (
	"context"
	"time"

	"tipovacka/scoring"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Prediction struct {
	UserID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MatchID        int            `gorm:"primaryKey"`
	HomeScore      int            `gorm:"not null"`
	AwayScore      int            `gorm:"not null"`
	ScorerPlayerID *int           `gorm:"null"`
	ScorerName     *string        `gorm:"null"`
	ScorerTeam     *string        `gorm:"null"`
	PointsAwarded  int            `gorm:"not null;default:0"`
	PointsDetail   datatypes.JSON `gorm:"type:jsonb;null"`
	EvaluatedAt    *time.Time     `gorm:"null"`
}

func (p *Prediction) ScoreLine() scoring.ScoreLine {
	return scoring.ScoreLine{Home: p.HomeScore, Away: p.AwayScore}
}

func (p *Prediction) Scorer() scoring.ScorerIdentity {
	identity := scoring.ScorerIdentity{PlayerID: p.ScorerPlayerID}
	if p.ScorerName != nil {
		identity.Name = *p.ScorerName
	}
	if p.ScorerTeam != nil {
		identity.Team = *p.ScorerTeam
	}
	return identity
}

// predictedColumns are the only columns a user submission may write.
var predictedColumns = []string{"home_score", "away_score", "scorer_player_id", "scorer_name", "scorer_team"}

type PredictionRepository struct {
	DB *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{DB: db}
}

func (r *PredictionRepository) GetPredictionsForMatch(ctx context.Context, matchId int) ([]*Prediction, error) {
	defer observe("GetPredictionsForMatch")()
	predictions := make([]*Prediction, 0)
	result := r.DB.WithContext(ctx).Where("match_id = ?", matchId).Order("user_id").Find(&predictions)
	if result.Error != nil {
		return nil, classify(result.Error, "predictions of match %d", matchId)
	}
	return predictions, nil
}

func (r *PredictionRepository) GetPredictionsForUser(ctx context.Context, userId uuid.UUID) ([]*Prediction, error) {
	predictions := make([]*Prediction, 0)
	result := r.DB.WithContext(ctx).Where("user_id = ?", userId).Order("match_id").Find(&predictions)
	if result.Error != nil {
		return nil, classify(result.Error, "predictions of user %s", userId)
	}
	return predictions, nil
}

func (r *PredictionRepository) GetPrediction(ctx context.Context, userId uuid.UUID, matchId int) (*Prediction, error) {
	prediction := &Prediction{}
	result := r.DB.WithContext(ctx).Where("user_id = ? AND match_id = ?", userId, matchId).First(prediction)
	if result.Error != nil {
		return nil, classify(result.Error, "prediction of user %s for match %d", userId, matchId)
	}
	return prediction, nil
}

// UpsertPrediction inserts or updates the predicted values. Points are left untouched
// on conflict.
func (r *PredictionRepository) UpsertPrediction(ctx context.Context, prediction *Prediction) error {
	defer observe("UpsertPrediction")()
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns(predictedColumns),
	}).Omit("points_awarded", "points_detail", "evaluated_at").Create(prediction)
	return classify(result.Error, "save prediction of user %s for match %d", prediction.UserID, prediction.MatchID)
}

func (r *PredictionRepository) UpdatePoints(ctx context.Context, userId uuid.UUID, matchId int, points int, detail datatypes.JSON, evaluatedAt *time.Time) error {
	defer observe("UpdatePredictionPoints")()
	result := r.DB.WithContext(ctx).Model(&Prediction{}).
		Where("user_id = ? AND match_id = ?", userId, matchId).
		Updates(map[string]any{
			"points_awarded": points,
			"points_detail":  detail,
			"evaluated_at":   evaluatedAt,
		})
	return notFoundIfNone(result, "points of user %s for match %d", userId, matchId)
}

// ResetPointsForMatch zeroes points and breakdown of every prediction of the match
// and returns how many rows were reset.
func (r *PredictionRepository) ResetPointsForMatch(ctx context.Context, matchId int) (int64, error) {
	defer observe("ResetPointsForMatch")()
	result := r.DB.WithContext(ctx).Model(&Prediction{}).
		Where("match_id = ?", matchId).
		Updates(map[string]any{
			"points_awarded": 0,
			"points_detail":  gorm.Expr("NULL"),
			"evaluated_at":   gorm.Expr("NULL"),
		})
	if result.Error != nil {
		return 0, classify(result.Error, "reset points of match %d", matchId)
	}
	return result.RowsAffected, nil
}

func (r *PredictionRepository) SumPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	defer observe("SumPredictionPoints")()
	return sumByUser(r.DB.WithContext(ctx).Model(&Prediction{}), "user_id", "points_awarded", userIds)
}

type userSum struct {
	UserID uuid.UUID
	Total  int
}

func sumByUser(query *gorm.DB, userColumn string, valueColumn string, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	sums := make(map[uuid.UUID]int, len(userIds))
	if len(userIds) == 0 {
		return sums, nil
	}
	rows := make([]userSum, 0)
	result := query.
		Select(userColumn+" AS user_id, COALESCE(SUM("+valueColumn+"), 0) AS total").
		Where(userColumn+" IN ?", userIds).
		Group(userColumn).
		Scan(&rows)
	if result.Error != nil {
		return nil, classify(result.Error, "sum %s by %s", valueColumn, userColumn)
	}
	for _, row := range rows {
		sums[row.UserID] = row.Total
	}
	return sums, nil
}
