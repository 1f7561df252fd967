package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlacementEvent struct {
	ID           int        `gorm:"primaryKey"`
	Title        string     `gorm:"not null"`
	Category     *string    `gorm:"null"`
	EventDate    time.Time  `gorm:"type:date;not null"`
	LockAt       *time.Time `gorm:"null"`
	CorrectValue *string    `gorm:"null"`
	EvaluatedAt  *time.Time `gorm:"null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (e *PlacementEvent) IsEvaluated() bool {
	return e.CorrectValue != nil && e.EvaluatedAt != nil
}

// IsLocked reports whether tips are closed at now: from the event day on, from lock_at
// when set, and once the event is evaluated.
func (e *PlacementEvent) IsLocked(now time.Time) bool {
	if e.IsEvaluated() {
		return true
	}
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	eventDay := time.Date(e.EventDate.Year(), e.EventDate.Month(), e.EventDate.Day(), 0, 0, 0, 0, time.UTC)
	if !today.Before(eventDay) {
		return true
	}
	return e.LockAt != nil && !now.Before(*e.LockAt)
}

type PlacementPrediction struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID        int        `gorm:"primaryKey"`
	PredictedValue string     `gorm:"not null"`
	PointsAwarded  int        `gorm:"not null;default:0"`
	EvaluatedAt    *time.Time `gorm:"null"`
}

type PlacementRepository struct {
	DB *gorm.DB
}

func NewPlacementRepository(db *gorm.DB) *PlacementRepository {
	return &PlacementRepository{DB: db}
}

func (r *PlacementRepository) GetEventById(ctx context.Context, eventId int) (*PlacementEvent, error) {
	event := &PlacementEvent{}
	result := r.DB.WithContext(ctx).First(event, eventId)
	if result.Error != nil {
		return nil, classify(result.Error, "placement event %d", eventId)
	}
	return event, nil
}

func (r *PlacementRepository) GetAllEvents(ctx context.Context) ([]*PlacementEvent, error) {
	events := make([]*PlacementEvent, 0)
	result := r.DB.WithContext(ctx).Order("event_date, id").Find(&events)
	if result.Error != nil {
		return nil, classify(result.Error, "list placement events")
	}
	return events, nil
}

func (r *PlacementRepository) SaveEvent(ctx context.Context, event *PlacementEvent) (*PlacementEvent, error) {
	result := r.DB.WithContext(ctx).Save(event)
	if result.Error != nil {
		return nil, classify(result.Error, "save placement event")
	}
	return event, nil
}

// SetCorrectValue stores the correct value together with the evaluation timestamp.
func (r *PlacementRepository) SetCorrectValue(ctx context.Context, eventId int, value string, evaluatedAt time.Time) error {
	defer observe("SetCorrectValue")()
	result := r.DB.WithContext(ctx).Model(&PlacementEvent{}).Where("id = ?", eventId).Updates(map[string]any{
		"correct_value": value,
		"evaluated_at":  evaluatedAt,
	})
	return notFoundIfNone(result, "set correct value of event %d", eventId)
}

func (r *PlacementRepository) ClearCorrectValue(ctx context.Context, eventId int) error {
	result := r.DB.WithContext(ctx).Model(&PlacementEvent{}).Where("id = ?", eventId).Updates(map[string]any{
		"correct_value": gorm.Expr("NULL"),
		"evaluated_at":  gorm.Expr("NULL"),
	})
	return notFoundIfNone(result, "clear correct value of event %d", eventId)
}

func (r *PlacementRepository) GetPredictionsForEvent(ctx context.Context, eventId int) ([]*PlacementPrediction, error) {
	defer observe("GetPlacementPredictionsForEvent")()
	predictions := make([]*PlacementPrediction, 0)
	result := r.DB.WithContext(ctx).Where("event_id = ?", eventId).Order("user_id").Find(&predictions)
	if result.Error != nil {
		return nil, classify(result.Error, "placement predictions of event %d", eventId)
	}
	return predictions, nil
}

func (r *PlacementRepository) GetPlacementPrediction(ctx context.Context, userId uuid.UUID, eventId int) (*PlacementPrediction, error) {
	prediction := &PlacementPrediction{}
	result := r.DB.WithContext(ctx).Where("user_id = ? AND event_id = ?", userId, eventId).First(prediction)
	if result.Error != nil {
		return nil, classify(result.Error, "placement prediction of user %s for event %d", userId, eventId)
	}
	return prediction, nil
}

func (r *PlacementRepository) UpsertPlacementPrediction(ctx context.Context, prediction *PlacementPrediction) error {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"predicted_value"}),
	}).Omit("points_awarded", "evaluated_at").Create(prediction)
	return classify(result.Error, "save placement prediction of user %s for event %d", prediction.UserID, prediction.EventID)
}

func (r *PlacementRepository) UpdatePlacementPoints(ctx context.Context, userId uuid.UUID, eventId int, points int, evaluatedAt *time.Time) error {
	defer observe("UpdatePlacementPoints")()
	result := r.DB.WithContext(ctx).Model(&PlacementPrediction{}).
		Where("user_id = ? AND event_id = ?", userId, eventId).
		Updates(map[string]any{
			"points_awarded": points,
			"evaluated_at":   evaluatedAt,
		})
	return notFoundIfNone(result, "points of user %s for event %d", userId, eventId)
}

func (r *PlacementRepository) ResetPointsForEvent(ctx context.Context, eventId int) (int64, error) {
	result := r.DB.WithContext(ctx).Model(&PlacementPrediction{}).
		Where("event_id = ?", eventId).
		Updates(map[string]any{
			"points_awarded": 0,
			"evaluated_at":   gorm.Expr("NULL"),
		})
	if result.Error != nil {
		return 0, classify(result.Error, "reset points of event %d", eventId)
	}
	return result.RowsAffected, nil
}

func (r *PlacementRepository) SumPlacementPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	defer observe("SumPlacementPoints")()
	return sumByUser(r.DB.WithContext(ctx).Model(&PlacementPrediction{}), "user_id", "points_awarded", userIds)
}
