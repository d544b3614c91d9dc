package handler

import (
	"errors"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "logistics_tracker"

// Transition names used as metric labels.
const (
	transitionRegister = "register"
	transitionShip     = "ship"
	transitionDeliver  = "deliver"
	queryOrder         = "get_order"
)

var (
	shipmentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "shipments_processed_total",
			Help:      "Total number of shipment triggers that shipped an order",
		},
	)

	shipmentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "shipments_failed_total",
			Help:      "Total number of shipment triggers that failed",
		},
	)

	shipmentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "shipments_dlq_total",
			Help:      "Total number of shipment triggers written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	shipmentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "shipment_processing_duration_seconds",
			Help:      "Histogram of shipment trigger processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	shipmentsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "shipments_in_progress",
			Help:      "Number of shipment triggers currently being processed",
		},
	)
)

var (
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Total number of lifecycle transitions by outcome",
		},
		[]string{"transition", "result"},
	)

	transitionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "transition_duration_seconds",
			Help:      "Histogram of lifecycle transition durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"transition"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		shipmentsProcessed,
		shipmentsFailed,
		shipmentsDLQ,
		commitErrors,
		shipmentProcessingDuration,
		shipmentsInProgress,

		transitionsTotal,
		transitionDuration,
	)
}

// result classifies err into a low-cardinality metric label.
func result(err error) string {
	var vErr *entities.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &vErr):
		return "validation"
	case errors.Is(err, entities.ErrMalformedReference):
		return "malformed_reference"
	case errors.Is(err, entities.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, entities.ErrNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, entities.ErrInvalidDeliveryDay):
		return "invalid_delivery_day"
	case errors.Is(err, entities.ErrStorage):
		return "storage"
	default:
		return "error"
	}
}
