package service

import (
	"context"

	"tipovacka/app_error"
	"tipovacka/client"
	"tipovacka/logger"
	"tipovacka/metrics"
	"tipovacka/repository"
	"tipovacka/scoring"
	"tipovacka/utils"

	"github.com/google/uuid"
)

type AggregateDiagnostic struct {
	UserID   uuid.UUID            `json:"user_id"`
	Name     string               `json:"name"`
	Cached   int                  `json:"cached"`
	Computed int                  `json:"computed"`
	Sources  scoring.PointSources `json:"sources"`
	Drift    bool                 `json:"drift"`
}

type Diagnostics struct {
	Rows     []*AggregateDiagnostic `json:"rows"`
	Drifting int                    `json:"drifting"`
}

type PointsService struct {
	predictions PredictionStore
	placements  PlacementStore
	manual      ManualPointsStore
	profiles    ProfileStore
	publisher   client.EventPublisher
}

func NewPointsService(predictions PredictionStore, placements PlacementStore, manual ManualPointsStore, profiles ProfileStore, publisher client.EventPublisher) *PointsService {
	return &PointsService{
		predictions: predictions,
		placements:  placements,
		manual:      manual,
		profiles:    profiles,
		publisher:   publisher,
	}
}

func (e *PointsService) sources(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]scoring.PointSources, error) {
	matchPoints, err := e.predictions.SumPointsByUser(ctx, userIds)
	if err != nil {
		return nil, err
	}
	placementPoints, err := e.placements.SumPlacementPointsByUser(ctx, userIds)
	if err != nil {
		return nil, err
	}
	manualDeltas, err := e.manual.SumDeltasByUser(ctx, userIds)
	if err != nil {
		return nil, err
	}
	sources := make(map[uuid.UUID]scoring.PointSources, len(userIds))
	for _, userId := range userIds {
		sources[userId] = scoring.PointSources{
			Match:     matchPoints[userId],
			Placement: placementPoints[userId],
			Manual:    manualDeltas[userId],
		}
	}
	return sources, nil
}

// Recompute rewrites the aggregate of every given user from the three point sources.
// A failing user is recorded in the report and the remaining users are still written,
// unless the failure aborts the batch.
func (e *PointsService) Recompute(ctx context.Context, userIds []uuid.UUID) (*BatchReport, error) {
	report := NewBatchReport()
	userIds = utils.Uniques(userIds)
	if len(userIds) == 0 {
		return report, nil
	}
	sources, err := e.sources(ctx, userIds)
	if err != nil {
		return nil, err
	}
	for _, userId := range userIds {
		err := e.profiles.UpdatePoints(ctx, userId, sources[userId].Total())
		if err == nil {
			metrics.RecomputedAggregatesCounter.Inc()
		} else {
			metrics.RowFailureCounter.WithLabelValues(string(app_error.KindOf(err))).Inc()
		}
		if abort := report.record(userId.String(), err); abort != nil {
			return report, abort
		}
	}
	return report, nil
}

// recomputeAfterAbort brings the aggregates of users whose rows were written before a
// batch stopped back in line with their point sources.
func (e *PointsService) recomputeAfterAbort(ctx context.Context, userIds []uuid.UUID) *BatchReport {
	report, err := e.Recompute(ctx, userIds)
	if err != nil {
		logger.WithService("points").WithError(err).WithField("users", len(userIds)).
			Error("Could not recompute aggregates after aborted batch")
	}
	return report
}

// Diagnose compares the cached aggregate of every profile with a fresh recompute. It
// never writes.
func (e *PointsService) Diagnose(ctx context.Context) (*Diagnostics, error) {
	profiles, err := e.profiles.GetAllProfiles(ctx)
	if err != nil {
		return nil, err
	}
	userIds := utils.Map(profiles, func(p *repository.Profile) uuid.UUID { return p.UserID })
	sources, err := e.sources(ctx, userIds)
	if err != nil {
		return nil, err
	}
	diagnostics := &Diagnostics{Rows: make([]*AggregateDiagnostic, 0, len(profiles))}
	for _, profile := range profiles {
		source := sources[profile.UserID]
		row := &AggregateDiagnostic{
			UserID:   profile.UserID,
			Name:     profile.Name(),
			Cached:   profile.Points,
			Computed: source.Total(),
			Sources:  source,
		}
		row.Drift = row.Cached != row.Computed
		if row.Drift {
			diagnostics.Drifting++
		}
		diagnostics.Rows = append(diagnostics.Rows, row)
	}
	return diagnostics, nil
}

// SyncAll recomputes the aggregate of every profile.
func (e *PointsService) SyncAll(ctx context.Context) (*BatchReport, error) {
	profiles, err := e.profiles.GetAllProfiles(ctx)
	if err != nil {
		return nil, err
	}
	userIds := utils.Map(profiles, func(p *repository.Profile) uuid.UUID { return p.UserID })
	report, err := e.Recompute(ctx, userIds)
	if report != nil && report.Processed > 0 {
		publish(ctx, e.publisher, client.AggregateSync, nil, nil, userIds)
	}
	return report, err
}
