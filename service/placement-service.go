package service

import (
	"context"
	"strings"
	"time"

	"tipovacka/app_error"
	"tipovacka/client"
	"tipovacka/metrics"
	"tipovacka/repository"
	"tipovacka/scoring"
	"tipovacka/utils"

	"github.com/google/uuid"
)

type NewPlacementEvent struct {
	Title     string     `json:"title"`
	Category  *string    `json:"category"`
	EventDate time.Time  `json:"event_date"`
	LockAt    *time.Time `json:"lock_at"`
}

type PlacementService struct {
	placements PlacementStore
	points     *PointsService
	publisher  client.EventPublisher
	rules      scoring.Rules
	now        func() time.Time
}

func NewPlacementService(placements PlacementStore, points *PointsService, publisher client.EventPublisher, rules scoring.Rules) *PlacementService {
	return &PlacementService{
		placements: placements,
		points:     points,
		publisher:  publisher,
		rules:      rules,
		now:        time.Now,
	}
}

func (e *PlacementService) CreateEvent(ctx context.Context, input NewPlacementEvent) (*repository.PlacementEvent, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, app_error.New(app_error.Invalid, "title is required")
	}
	if input.EventDate.IsZero() {
		return nil, app_error.New(app_error.Invalid, "event date is required")
	}
	event := &repository.PlacementEvent{
		Title:     title,
		EventDate: input.EventDate,
		LockAt:    input.LockAt,
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) != "" {
		event.Category = utils.Ptr(strings.TrimSpace(*input.Category))
	}
	return e.placements.SaveEvent(ctx, event)
}

func (e *PlacementService) ListEvents(ctx context.Context) ([]*repository.PlacementEvent, error) {
	return e.placements.GetAllEvents(ctx)
}

// EvaluateEvent stores the correct value of an event and overwrites the points of
// every placement prediction on it.
func (e *PlacementService) EvaluateEvent(ctx context.Context, eventId int, correctValue *string) (*EvaluationReport, error) {
	if correctValue == nil || strings.TrimSpace(*correctValue) == "" {
		return nil, app_error.New(app_error.MissingGroundTruth, "correct value is required")
	}
	correct := strings.TrimSpace(*correctValue)
	if _, err := e.placements.GetEventById(ctx, eventId); err != nil {
		return nil, err
	}
	predictions, err := e.placements.GetPredictionsForEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}
	evaluatedAt := e.now()
	if err := e.placements.SetCorrectValue(ctx, eventId, correct, evaluatedAt); err != nil {
		return nil, err
	}
	metrics.EvaluationCounter.WithLabelValues("placement", "evaluate").Inc()

	report := &EvaluationReport{Predictions: NewBatchReport()}
	written := make([]uuid.UUID, 0, len(predictions))
	for _, prediction := range predictions {
		points := scoring.ScorePlacement(prediction.PredictedValue, correct, e.rules)
		err := e.placements.UpdatePlacementPoints(ctx, prediction.UserID, eventId, points, &evaluatedAt)
		if err != nil {
			metrics.RowFailureCounter.WithLabelValues(string(app_error.KindOf(err))).Inc()
		} else {
			written = append(written, prediction.UserID)
		}
		if abort := report.Predictions.record(prediction.UserID.String(), err); abort != nil {
			report.Aggregates = e.points.recomputeAfterAbort(ctx, written)
			publish(ctx, e.publisher, client.PlacementEvaluated, nil, &eventId, written)
			return report, abort
		}
	}

	userIds := userIdsOfPlacements(predictions)
	report.Aggregates, err = e.points.Recompute(ctx, userIds)
	if err != nil {
		return report, err
	}
	publish(ctx, e.publisher, client.PlacementEvaluated, nil, &eventId, userIds)
	return report, nil
}

func (e *PlacementService) ResetEvent(ctx context.Context, eventId int) (*EvaluationReport, error) {
	if _, err := e.placements.GetEventById(ctx, eventId); err != nil {
		return nil, err
	}
	predictions, err := e.placements.GetPredictionsForEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}
	reset, err := e.placements.ResetPointsForEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if err := e.placements.ClearCorrectValue(ctx, eventId); err != nil {
		return nil, err
	}
	metrics.EvaluationCounter.WithLabelValues("placement", "reset").Inc()

	report := &EvaluationReport{Predictions: NewBatchReport()}
	report.Predictions.Processed = int(reset)
	userIds := userIdsOfPlacements(predictions)
	report.Aggregates, err = e.points.Recompute(ctx, userIds)
	if err != nil {
		return report, err
	}
	publish(ctx, e.publisher, client.PlacementReset, nil, &eventId, userIds)
	return report, nil
}

func userIdsOfPlacements(predictions []*repository.PlacementPrediction) []uuid.UUID {
	return utils.Map(predictions, func(p *repository.PlacementPrediction) uuid.UUID { return p.UserID })
}
