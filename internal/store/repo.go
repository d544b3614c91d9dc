// Package store keeps lifecycle records in append-only sequences, one per stage.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
)

type Stage string

const (
	StageRequests   Stage = "order_request"
	StageShipments  Stage = "order_shipping"
	StageDeliveries Stage = "order_delivery"
)

var Stages = []Stage{StageRequests, StageShipments, StageDeliveries}

// Backend is the storage medium. It knows nothing about record contents.
type Backend interface {
	// Init creates an empty sequence for stage if none exists.
	Init(ctx context.Context, stage Stage) error
	// ReadAll returns every record of stage in insertion order.
	ReadAll(ctx context.Context, stage Stage) ([]json.RawMessage, error)
	// Append adds one record to stage, keeping all existing ones.
	Append(ctx context.Context, stage Stage, record json.RawMessage) error
}

type repo struct {
	backend Backend
}

func NewRepo(backend Backend) *repo {
	return &repo{backend: backend}
}

// Init prepares all stage sequences.
func (r *repo) Init(ctx context.Context) error {
	for _, stage := range Stages {
		if err := r.backend.Init(ctx, stage); err != nil {
			return entities.NewStorageError("init", string(stage), err)
		}
	}
	return nil
}

func (r *repo) Requests(ctx context.Context) ([]entities.OrderRequest, error) {
	records, err := readAll[OrderRequestRecord](ctx, r.backend, StageRequests)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderRequest, 0, len(records))
	for _, rec := range records {
		out = append(out, OrderRequestToEntity(rec))
	}
	return out, nil
}

func (r *repo) AppendRequest(ctx context.Context, o entities.OrderRequest) error {
	return appendOne(ctx, r.backend, StageRequests, OrderRequestToRecord(o))
}

func (r *repo) Shipments(ctx context.Context) ([]entities.OrderShipping, error) {
	records, err := readAll[OrderShippingRecord](ctx, r.backend, StageShipments)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderShipping, 0, len(records))
	for _, rec := range records {
		out = append(out, OrderShippingToEntity(rec))
	}
	return out, nil
}

func (r *repo) AppendShipment(ctx context.Context, s entities.OrderShipping) error {
	return appendOne(ctx, r.backend, StageShipments, OrderShippingToRecord(s))
}

func (r *repo) Deliveries(ctx context.Context) ([]entities.DeliveryRecord, error) {
	records, err := readAll[DeliveryRecord](ctx, r.backend, StageDeliveries)
	if err != nil {
		return nil, err
	}
	out := make([]entities.DeliveryRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, DeliveryToEntity(rec))
	}
	return out, nil
}

func (r *repo) AppendDelivery(ctx context.Context, d entities.DeliveryRecord) error {
	return appendOne(ctx, r.backend, StageDeliveries, DeliveryToRecord(d))
}

func readAll[T any](ctx context.Context, b Backend, stage Stage) ([]T, error) {
	raw, err := b.ReadAll(ctx, stage)
	if err != nil {
		return nil, entities.NewStorageError("read", string(stage), err)
	}
	out := make([]T, 0, len(raw))
	for i, msg := range raw {
		var rec T
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, entities.NewStorageError("read", string(stage), fmt.Errorf("malformed record %d: %w", i, err))
		}
		out = append(out, rec)
	}
	return out, nil
}

func appendOne[T any](ctx context.Context, b Backend, stage Stage, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return entities.NewStorageError("encode", string(stage), err)
	}
	if err := b.Append(ctx, stage, data); err != nil {
		return entities.NewStorageError("append", string(stage), err)
	}
	return nil
}
