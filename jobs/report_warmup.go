package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// reportWarmer recomputes the cached report summary.
type reportWarmer interface {
	Warm(ctx context.Context) error
}

// ReportWarmupJob pre-populates the report cache so the first dashboard
// visit of the day is a cache hit.
type ReportWarmupJob struct {
	Reports reportWarmer
	Logger  *slog.Logger
}

// NewReportWarmupJob wires dependencies for the warmup handler.
func NewReportWarmupJob(reports reportWarmer, logger *slog.Logger) *ReportWarmupJob {
	return &ReportWarmupJob{Reports: reports, Logger: logger}
}

// Handle processes report warmup tasks.
func (j *ReportWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Reports == nil {
		return errors.New("report warmup: handler not configured")
	}
	var payload ReportWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.logger()
	logger.Info("starting report warmup")

	warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := j.Reports.Warm(warmCtx); err != nil {
		logger.Error("warm report cache", slog.Any("error", err))
		return err
	}

	logger.Info("completed report warmup", slog.Time("scheduled_for", payload.ScheduledFor))
	return nil
}

func (j *ReportWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskTypeReportWarmup))
	}
	return slog.Default().With(slog.String("job", TaskTypeReportWarmup))
}
