package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/config"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/segmentio/kafka-go"
)

type Shipper interface {
	ShipDocument(ctx context.Context, doc []byte) (string, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler ships an order for every shipment trigger document on the topic.
type kafkaHandler struct {
	dlq     messageWriter
	reader  messageReader
	logger  *slog.Logger
	shipper Shipper
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, shipper Shipper) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		shipper: shipper,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleShipment(ctx, m); err != nil {
			h.logFailure(err, m)

			// kafka-go retries writes itself
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			shipmentsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleShipment(ctx context.Context, m kafka.Message) error {
	shipmentsInProgress.Inc()
	defer shipmentsInProgress.Dec()

	start := time.Now()
	code, err := h.shipper.ShipDocument(ctx, m.Value)
	shipmentProcessingDuration.Observe(time.Since(start).Seconds())
	observe(transitionShip, start, err)
	if err != nil {
		shipmentsFailed.Inc()
		return fmt.Errorf("failed to ship order: %w", err)
	}

	shipmentsProcessed.Inc()
	h.logger.Debug("order shipped", slog.String("tracking_code", code), slog.Int64("offset", m.Offset))
	return nil
}

// logFailure logs rejected documents as warnings and everything else as errors.
func (h *kafkaHandler) logFailure(err error, m kafka.Message) {
	attrs := []any{slog.Any("error", err), slog.Int("partition", m.Partition), slog.Int64("offset", m.Offset)}
	if errors.Is(err, entities.ErrStorage) {
		h.logger.Error("failed to handle message", attrs...)
		return
	}
	h.logger.Warn("rejected shipment trigger", attrs...)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
