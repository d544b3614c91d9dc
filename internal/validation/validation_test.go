package validation_test

import (
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validProductID = "8421691423220"
	validAddress   = "C/LISBOA,4, MADRID, SPAIN"
	validPhone     = "+34123456789"
	validZip       = "28005"
)

func assertReason(t *testing.T, err error, field, reason string) {
	t.Helper()
	var ve *entities.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, reason, ve.Reason)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestProductID(t *testing.T) {
	testCases := []struct {
		name    string
		input   any
		wantErr string
	}{
		{name: "valid", input: validProductID},
		{name: "valid with nonzero check digit", input: "4006381333931"},
		{name: "not a number", input: "842169142322A", wantErr: "not a 13 digit string"},
		{name: "too short", input: "842169142322", wantErr: "not a 13 digit string"},
		{name: "too long", input: "84216914232222", wantErr: "not a 13 digit string"},
		{name: "not a string", input: 8421691423220, wantErr: "not a 13 digit string"},
		{name: "nil", input: nil, wantErr: "not a 13 digit string"},
		{name: "wrong checksum", input: "8421691423222", wantErr: "check digit is incorrect"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validation.ProductID(tc.input)
			if tc.wantErr != "" {
				assertReason(t, err, entities.FieldProductID, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got)
		})
	}
}

func TestProductID_CheckDigitExhaustive(t *testing.T) {
	// 8421691423220 has a weighted sum of 90, so only 0 is accepted as the last digit.
	for d := '0'; d <= '9'; d++ {
		code := validProductID[:12] + string(d)
		_, err := validation.ProductID(code)
		if d == '0' {
			assert.NoError(t, err, code)
			continue
		}
		assertReason(t, err, entities.FieldProductID, "check digit is incorrect")
	}
}

func TestOrderType(t *testing.T) {
	testCases := []struct {
		name    string
		input   any
		want    entities.OrderType
		wantErr string
	}{
		{name: "regular", input: "Regular", want: entities.OrderTypeRegular},
		{name: "premium", input: "Premium", want: entities.OrderTypePremium},
		{name: "upper case", input: "PREMIUM", want: entities.OrderTypePremium},
		{name: "lower case", input: "regular", want: entities.OrderTypeRegular},
		{name: "unknown", input: "PRE", wantErr: "string is invalid"},
		{name: "not a string", input: 333, wantErr: "not a string"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validation.OrderType(tc.input)
			if tc.wantErr != "" {
				assertReason(t, err, entities.FieldOrderType, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeliveryAddress(t *testing.T) {
	testCases := []struct {
		name    string
		input   any
		wantErr string
	}{
		{name: "valid", input: validAddress},
		{name: "exactly 20 characters", input: "CALLE MAYOR 1 MADRID"},
		{name: "exactly 100 characters", input: "A " + strings.Repeat("B", 98)},
		{name: "not a string", input: 333, wantErr: "address is not a string"},
		{name: "too long", input: "A " + strings.Repeat("B", 99), wantErr: "address is too long"},
		{name: "too short", input: "C/ ALLE, SPAIN", wantErr: "address is too short"},
		{name: "no space", input: "C/LISBOA,4,MADRID,SPAIN", wantErr: "address should contain a space"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validation.DeliveryAddress(tc.input)
			if tc.wantErr != "" {
				assertReason(t, err, entities.FieldDeliveryAddress, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got)
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	testCases := []struct {
		name    string
		input   any
		wantErr string
	}{
		{name: "valid", input: validPhone},
		{name: "not a string", input: 34123456789, wantErr: "phone number is not a string"},
		{name: "too short", input: "+3412345678", wantErr: "phone number is too short"},
		{name: "too long", input: "+341234567899", wantErr: "phone number is too long"},
		{name: "wrong area code", input: "+44123456789", wantErr: "wrong area code"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validation.PhoneNumber(tc.input)
			if tc.wantErr != "" {
				assertReason(t, err, entities.FieldPhoneNumber, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got)
		})
	}
}

func TestZipCode(t *testing.T) {
	testCases := []struct {
		name    string
		input   any
		wantErr string
	}{
		{name: "valid", input: validZip},
		{name: "lower bound", input: "01001"},
		{name: "upper bound", input: "52006"},
		{name: "not a string", input: 28005, wantErr: "zip code not a string"},
		{name: "too long", input: "280005", wantErr: "zip code not 5 characters"},
		{name: "too short", input: "2800", wantErr: "zip code not 5 characters"},
		{name: "not digits", input: "28A05", wantErr: "characters are not digits"},
		{name: "below range", input: "00999", wantErr: "zip code is below range"},
		{name: "just below range", input: "01000", wantErr: "zip code is below range"},
		{name: "above range", input: "52007", wantErr: "zip code is above range"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validation.ZipCode(tc.input)
			if tc.wantErr != "" {
				assertReason(t, err, entities.FieldZipCode, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got)
		})
	}
}

func TestOrder(t *testing.T) {
	valid := entities.OrderInput{
		ProductID:       validProductID,
		OrderType:       "Regular",
		DeliveryAddress: validAddress,
		PhoneNumber:     validPhone,
		ZipCode:         validZip,
	}

	t.Run("normalizes valid input", func(t *testing.T) {
		got, err := validation.Order(valid)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderFields{
			ProductID:       validProductID,
			OrderType:       entities.OrderTypeRegular,
			DeliveryAddress: validAddress,
			PhoneNumber:     validPhone,
			ZipCode:         validZip,
		}, got)
	})

	t.Run("first failing field wins", func(t *testing.T) {
		in := valid
		in.OrderType = "PRE"
		in.ZipCode = "52007"
		_, err := validation.Order(in)
		assertReason(t, err, entities.FieldOrderType, "string is invalid")

		in.ProductID = "1"
		_, err = validation.Order(in)
		assertReason(t, err, entities.FieldProductID, "not a 13 digit string")
	})

	t.Run("zip code checked last", func(t *testing.T) {
		in := valid
		in.ZipCode = "00999"
		_, err := validation.Order(in)
		assertReason(t, err, entities.FieldZipCode, "zip code is below range")
	})
}

func TestReferences(t *testing.T) {
	refs := validation.NewReferences()

	t.Run("order id", func(t *testing.T) {
		assert.NoError(t, refs.OrderID("7628fa19bcb8e965bb73f8a180718f99"))
		assert.NoError(t, refs.OrderID("7628FA19BCB8E965BB73F8A180718F99"))

		for _, bad := range []string{"", "tracking_code", "7628fa19bcb8e965bb73f8a180718f9", "7628fa19bcb8e965bb73f8a180718f9z", "0x28fa19bcb8e965bb73f8a180718f99"} {
			err := refs.OrderID(bad)
			assert.ErrorIs(t, err, entities.ErrMalformedReference, bad)
		}
	})

	t.Run("tracking code", func(t *testing.T) {
		code := strings.Repeat("ab", 32)
		assert.NoError(t, refs.TrackingCode(code))
		assert.NoError(t, refs.TrackingCode(strings.ToUpper(code)))

		err := refs.TrackingCode("tracking_code")
		var me *entities.MalformedReferenceError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, entities.KindTrackingCode, me.Kind)
		assert.ErrorIs(t, refs.TrackingCode(code[:32]), entities.ErrMalformedReference)
	})
}
