// Package storetest holds the behaviour every store.Backend must show.
package storetest

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBackend runs the backend contract against fresh backends built by newBackend.
func RunBackend(t *testing.T, newBackend func(t *testing.T) store.Backend) {
	t.Run("init creates empty sequences", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		for _, stage := range store.Stages {
			require.NoError(t, b.Init(ctx, stage))
			records, err := b.ReadAll(ctx, stage)
			require.NoError(t, err)
			assert.Empty(t, records)
		}
	})

	t.Run("init keeps existing records", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		require.NoError(t, b.Init(ctx, store.StageRequests))
		require.NoError(t, b.Append(ctx, store.StageRequests, json.RawMessage(`{"n":1}`)))
		require.NoError(t, b.Init(ctx, store.StageRequests))

		records, err := b.ReadAll(ctx, store.StageRequests)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("append preserves insertion order", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		require.NoError(t, b.Init(ctx, store.StageShipments))

		for i := 0; i < 5; i++ {
			rec := json.RawMessage(fmt.Sprintf(`{"n":%d}`, i))
			require.NoError(t, b.Append(ctx, store.StageShipments, rec))
		}

		records, err := b.ReadAll(ctx, store.StageShipments)
		require.NoError(t, err)
		require.Len(t, records, 5)
		for i, rec := range records {
			var got struct{ N int }
			require.NoError(t, json.Unmarshal(rec, &got))
			assert.Equal(t, i, got.N)
		}
	})

	t.Run("stages are independent", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		for _, stage := range store.Stages {
			require.NoError(t, b.Init(ctx, stage))
		}

		require.NoError(t, b.Append(ctx, store.StageDeliveries, json.RawMessage(`{"n":1}`)))

		requests, err := b.ReadAll(ctx, store.StageRequests)
		require.NoError(t, err)
		assert.Empty(t, requests)

		deliveries, err := b.ReadAll(ctx, store.StageDeliveries)
		require.NoError(t, err)
		assert.Len(t, deliveries, 1)
	})
}
