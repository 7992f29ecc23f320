package jobs

import (
	"context"
	"log/slog"
	"time"

	"kakanin/internal/core/application/usecases/queries"
	"kakanin/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultDuePickupsSchedule runs the job at 07:00 every day.
const DefaultDuePickupsSchedule = "0 7 * * *"

// DuePickupsReader is satisfied by queries.GetDuePickupsQueryHandler.
type DuePickupsReader interface {
	Handle(ctx context.Context, query queries.GetDuePickupsQuery) ([]queries.OrderView, error)
}

// DuePickupsJob logs the open orders to be collected today, earliest recorded first.
type DuePickupsJob struct {
	reader   DuePickupsReader
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDuePickupsJob creates the job. schedule is a standard five-field cron
// expression; an empty schedule falls back to DefaultDuePickupsSchedule.
func NewDuePickupsJob(reader DuePickupsReader, schedule string, logger *slog.Logger) *DuePickupsJob {
	if schedule == "" {
		schedule = DefaultDuePickupsSchedule
	}
	return &DuePickupsJob{
		reader:   reader,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(),
		logger:   logger.With("component", "due_pickups_job"),
	}
}

// Start registers the schedule and starts the scheduler goroutine.
func (j *DuePickupsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due pickups job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *DuePickupsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Due pickups job stopped")
}

// Run reports today's pickups once. Errors are logged, not returned.
func (j *DuePickupsJob) Run(ctx context.Context) {
	today, err := kernel.PickupDateFromTime(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Due pickups job failed", "error", err)
		return
	}

	query, err := queries.NewGetDuePickupsQuery(today)
	if err != nil {
		j.logger.ErrorContext(ctx, "Due pickups job failed", "error", err)
		return
	}

	due, err := j.reader.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Due pickups job failed", "error", err, "date", today.String())
		return
	}

	j.logger.InfoContext(ctx, "Pickups due today", "date", today.String(), "count", len(due))
	for _, o := range due {
		j.logger.InfoContext(ctx, "Pickup due",
			"order_id", o.ID.String(),
			"buyer", o.Buyer.Name,
			"contact_number", o.Buyer.ContactNumber,
			"delicacy", o.Delicacy.String(),
			"quantity", o.Quantity,
			"container_size", o.ContainerSize.String(),
			"pickup_place", o.PickupPlace,
			"status", o.Status.String(),
		)
	}
}
