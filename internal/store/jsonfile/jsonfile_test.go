package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/jsonfile"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *jsonfile.Backend {
	b, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	return b
}

func TestBackend(t *testing.T) {
	storetest.RunBackend(t, func(t *testing.T) store.Backend {
		return newBackend(t)
	})
}

func TestBackend_FileLayout(t *testing.T) {
	b := newBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Init(ctx, store.StageRequests))
	data, err := os.ReadFile(b.Path(store.StageRequests))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	require.NoError(t, b.Append(ctx, store.StageRequests, json.RawMessage(`{"order_id":"abc"}`)))
	data, err = os.ReadFile(b.Path(store.StageRequests))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"order_id":"abc"}]`, string(data))
}

func TestBackend_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.ReadAll(ctx, store.StageShipments)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, os.WriteFile(b.Path(store.StageShipments), []byte("{not json"), 0o644))

		_, err := b.ReadAll(ctx, store.StageShipments)
		assert.Error(t, err)

		err = b.Append(ctx, store.StageShipments, json.RawMessage(`{}`))
		assert.Error(t, err)
	})

	t.Run("repo reports storage error", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, os.WriteFile(b.Path(store.StageRequests), []byte("{not json"), 0o644))

		_, err := store.NewRepo(b).Requests(ctx)
		var se *entities.StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "read", se.Op)
		assert.Equal(t, string(store.StageRequests), se.Stage)
		assert.ErrorIs(t, err, entities.ErrStorage)
	})
}
