package cron

import (
	"context"
	"time"

	"tipovacka/logger"
	"tipovacka/metrics"
	"tipovacka/service"
	"tipovacka/utils"

	"github.com/go-co-op/gocron/v2"
)

const driftCheckTimeout = 2 * time.Minute

type PointsChecker interface {
	Diagnose(ctx context.Context) (*service.Diagnostics, error)
	SyncAll(ctx context.Context) (*service.BatchReport, error)
}

type DriftCheckJob struct {
	points     PointsChecker
	autoRepair bool
}

func NewDriftCheckJob(points PointsChecker, autoRepair bool) *DriftCheckJob {
	return &DriftCheckJob{points: points, autoRepair: autoRepair}
}

// Run compares every cached aggregate against its recomputed total. Drift is only
// repaired when auto repair is enabled.
func (j *DriftCheckJob) Run(ctx context.Context) (*service.Diagnostics, error) {
	log := logger.WithService("drift-check")
	diagnostics, err := j.points.Diagnose(ctx)
	if err != nil {
		log.WithError(err).Error("Could not diagnose aggregates")
		return nil, err
	}
	metrics.DriftingProfilesGauge.Set(float64(diagnostics.Drifting))
	if diagnostics.Drifting == 0 {
		log.Debug("No aggregate drift")
		return diagnostics, nil
	}
	drifting := utils.Filter(diagnostics.Rows, func(row *service.AggregateDiagnostic) bool { return row.Drift })
	for _, row := range drifting {
		log.WithField("user_id", row.UserID).
			WithField("cached", row.Cached).
			WithField("computed", row.Computed).
			Warn("Cached points drifted from recomputed total")
	}
	if !j.autoRepair {
		return diagnostics, nil
	}
	report, err := j.points.SyncAll(ctx)
	if err != nil {
		log.WithError(err).Error("Could not repair aggregates")
		return diagnostics, err
	}
	if !report.Ok() {
		log.WithField("failed", len(report.Failed)).Warn("Some aggregates could not be repaired")
	}
	log.WithField("processed", report.Processed).Info("Repaired drifting aggregates")
	return diagnostics, nil
}

// StartDriftCheck schedules the job on the given interval, starting immediately. The
// caller owns the returned scheduler and shuts it down.
func StartDriftCheck(job *DriftCheckJob, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), driftCheckTimeout)
			defer cancel()
			_, _ = job.Run(ctx)
		}),
		gocron.WithName("aggregate-drift-check"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}
