package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2023, 3, 9, 10, 30, 0, 123456000, time.UTC)

func TestRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	repo := store.NewRepo(backend)
	require.NoError(t, repo.Init(ctx))

	req := entities.OrderRequest{
		OrderID: "7628fa19bcb8e965bb73f8a180718f99",
		OrderFields: entities.OrderFields{
			ProductID:       "8421691423220",
			OrderType:       entities.OrderTypePremium,
			DeliveryAddress: "C/LISBOA,4, MADRID, SPAIN",
			PhoneNumber:     "+34123456789",
			ZipCode:         "28005",
		},
		TimeStamp: stamp,
	}
	ship := entities.OrderShipping{
		OrderID:      req.OrderID,
		ProductID:    req.ProductID,
		PhoneNumber:  req.PhoneNumber,
		IssuedAt:     stamp,
		DeliveryDay:  stamp.Add(24 * time.Hour),
		TrackingCode: "code",
	}
	delivery := entities.DeliveryRecord{TrackingCode: "code", TimeStamp: stamp.Add(24 * time.Hour)}

	require.NoError(t, repo.AppendRequest(ctx, req))
	require.NoError(t, repo.AppendShipment(ctx, ship))
	require.NoError(t, repo.AppendDelivery(ctx, delivery))

	requests, err := repo.Requests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, req, requests[0])
	assert.True(t, requests[0].TimeStamp.Equal(stamp))

	shipments, err := repo.Shipments(ctx)
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, ship, shipments[0])

	deliveries, err := repo.Deliveries(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, delivery, deliveries[0])

	assert.Equal(t, 1, backend.Len(store.StageRequests))
}

func TestRepo_RecordKeys(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	repo := store.NewRepo(backend)
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, repo.AppendShipment(ctx, entities.OrderShipping{IssuedAt: stamp, DeliveryDay: stamp}))

	raw, err := backend.ReadAll(ctx, store.StageShipments)
	require.NoError(t, err)
	require.Len(t, raw, 1)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw[0], &fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"order_id", "product_id", "phone_number", "issued_at", "delivery_day", "tracking_code"}, keys)
	assert.Equal(t, 1678357800.123456, fields["issued_at"])
}

type failingBackend struct {
	err error
}

func (f failingBackend) Init(context.Context, store.Stage) error { return f.err }

func (f failingBackend) ReadAll(context.Context, store.Stage) ([]json.RawMessage, error) {
	return nil, f.err
}

func (f failingBackend) Append(context.Context, store.Stage, json.RawMessage) error { return f.err }

func TestRepo_StorageErrors(t *testing.T) {
	ctx := context.Background()
	ioErr := errors.New("disk is gone")
	repo := store.NewRepo(failingBackend{err: ioErr})

	testCases := []struct {
		name   string
		call   func() error
		wantOp string
	}{
		{name: "init", call: func() error { return repo.Init(ctx) }, wantOp: "init"},
		{name: "read", call: func() error { _, err := repo.Shipments(ctx); return err }, wantOp: "read"},
		{name: "append", call: func() error { return repo.AppendDelivery(ctx, entities.DeliveryRecord{}) }, wantOp: "append"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			var se *entities.StorageError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.wantOp, se.Op)
			assert.ErrorIs(t, err, entities.ErrStorage)
			assert.ErrorIs(t, err, ioErr)
		})
	}
}

func TestRepo_MalformedRecord(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	repo := store.NewRepo(backend)
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, backend.Append(ctx, store.StageRequests, json.RawMessage(`{"time_stamp":"yesterday"}`)))

	_, err := repo.Requests(ctx)
	assert.ErrorIs(t, err, entities.ErrStorage)
}
