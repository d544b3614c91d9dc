// Package jobs runs scheduled background tasks.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

const runTimeout = 30 * time.Second

var overdueShipments = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "logistics_tracker",
		Subsystem: "jobs",
		Name:      "overdue_shipments",
		Help:      "Number of shipments past their delivery day without a delivery",
	},
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(overdueShipments)
}

type OverdueLister interface {
	OverdueShipments(ctx context.Context) ([]entities.OrderShipping, error)
}

// OverdueJob periodically reports shipments that missed their delivery day.
type OverdueJob struct {
	schedule string
	lister   OverdueLister
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueJob creates the job. schedule is a cron spec with a seconds field.
func NewOverdueJob(logger *slog.Logger, schedule string, lister OverdueLister) *OverdueJob {
	return &OverdueJob{
		schedule: schedule,
		lister:   lister,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(slog.String("job", "overdue_shipments")),
	}
}

func (j *OverdueJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("job started", slog.String("schedule", j.schedule))
	return nil
}

// Stop stops scheduling and waits for a running check to finish.
func (j *OverdueJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("job stopped")
}

func (j *OverdueJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := j.Run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "overdue check failed", slog.Any("error", err))
	}
}

// Run checks once, updates the gauge and returns the number of overdue shipments.
func (j *OverdueJob) Run(ctx context.Context) (int, error) {
	overdue, err := j.lister.OverdueShipments(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue shipments: %w", err)
	}

	overdueShipments.Set(float64(len(overdue)))
	for _, s := range overdue {
		j.logger.WarnContext(ctx, "shipment overdue",
			slog.String("order_id", s.OrderID),
			slog.String("tracking_code", s.TrackingCode),
			slog.Time("delivery_day", s.DeliveryDay),
		)
	}
	return len(overdue), nil
}
