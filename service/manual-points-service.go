package service

import (
	"context"
	"strings"

	"tipovacka/app_error"
	"tipovacka/client"
	"tipovacka/metrics"
	"tipovacka/repository"
	"tipovacka/utils"

	"github.com/google/uuid"
)

const manualHistoryLimit = 100

type ManualAdjustment struct {
	Entry      *repository.ManualPointsLogEntry
	Profile    *repository.Profile
	Aggregates *BatchReport
}

type ManualPointsService struct {
	manual    ManualPointsStore
	profiles  ProfileStore
	points    *PointsService
	publisher client.EventPublisher
}

func NewManualPointsService(manual ManualPointsStore, profiles ProfileStore, points *PointsService, publisher client.EventPublisher) *ManualPointsService {
	return &ManualPointsService{
		manual:    manual,
		profiles:  profiles,
		points:    points,
		publisher: publisher,
	}
}

// Adjust appends a signed delta to the manual log of target and recomputes its aggregate.
// The old and new totals on the entry are snapshots for auditing only.
func (e *ManualPointsService) Adjust(ctx context.Context, adminId uuid.UUID, targetId uuid.UUID, delta int, reason *string) (*ManualAdjustment, error) {
	if delta == 0 {
		return nil, app_error.New(app_error.Invalid, "change amount cannot be zero")
	}
	profile, err := e.profiles.GetProfile(ctx, targetId)
	if err != nil {
		return nil, err
	}
	entry := &repository.ManualPointsLogEntry{
		AdminUserID:  adminId,
		TargetUserID: targetId,
		ChangeAmount: delta,
		OldPoints:    profile.Points,
		NewPoints:    max(0, profile.Points+delta),
	}
	if reason != nil && strings.TrimSpace(*reason) != "" {
		entry.Reason = utils.Ptr(strings.TrimSpace(*reason))
	}
	if err := e.manual.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	metrics.ManualAdjustmentCounter.Inc()

	adjustment := &ManualAdjustment{Entry: entry}
	adjustment.Aggregates, err = e.points.Recompute(ctx, []uuid.UUID{targetId})
	if err != nil {
		return adjustment, err
	}
	adjustment.Profile, err = e.profiles.GetProfile(ctx, targetId)
	if err != nil {
		return adjustment, err
	}
	publish(ctx, e.publisher, client.ManualAdjustment, nil, nil, []uuid.UUID{targetId})
	return adjustment, nil
}

// History returns the latest manual log entries, newest first.
func (e *ManualPointsService) History(ctx context.Context) ([]*repository.ManualPointsLogEntry, error) {
	return e.manual.GetLatestEntries(ctx, manualHistoryLimit)
}
