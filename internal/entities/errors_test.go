package entities_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	testCases := []struct {
		field string
		want  string
	}{
		{field: entities.FieldProductID, want: "invalid ean13 code: check digit is incorrect"},
		{field: entities.FieldZipCode, want: "invalid zip code: check digit is incorrect"},
		{field: "weight", want: "invalid weight: check digit is incorrect"},
	}

	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			err := entities.NewValidationError(tc.field, "check digit is incorrect")
			assert.EqualError(t, err, tc.want)
			assert.ErrorIs(t, err, entities.ErrValidation)

			var verr *entities.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := entities.NewNotFoundError(entities.KindOrderID, "0123")
	assert.EqualError(t, err, "order id not found")
	assert.ErrorIs(t, err, entities.ErrNotFound)
	assert.NotErrorIs(t, err, entities.ErrMalformedReference)
}

func TestMalformedReferenceError(t *testing.T) {
	err := entities.NewMalformedReferenceError(entities.KindTrackingCode, "xyz")
	assert.EqualError(t, err, `tracking code is not a well-formed hexadecimal string: "xyz"`)
	assert.ErrorIs(t, err, entities.ErrMalformedReference)
}

func TestStorageError(t *testing.T) {
	err := entities.NewStorageError("read", "order_request", fs.ErrPermission)
	assert.EqualError(t, err, "storage: failed to read order_request: permission denied")
	assert.ErrorIs(t, err, entities.ErrStorage)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestMissingOrderID(t *testing.T) {
	assert.ErrorIs(t, entities.ErrMissingOrderID, entities.ErrInvalidInput)
}
