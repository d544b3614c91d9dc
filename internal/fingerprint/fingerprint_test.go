package fingerprint_test

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/fingerprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fields = entities.OrderFields{
		ProductID:       "8421691423220",
		OrderType:       entities.OrderTypeRegular,
		DeliveryAddress: "C/LISBOA,4, MADRID, SPAIN",
		PhoneNumber:     "+34123456789",
		ZipCode:         "28005",
	}
	stamp = time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)
)

func TestCanonicalOrder(t *testing.T) {
	data, err := fingerprint.CanonicalOrder(fields, stamp)
	require.NoError(t, err)

	want := `{"delivery_address":"C/LISBOA,4, MADRID, SPAIN","order_type":"regular",` +
		`"phone_number":"+34123456789","product_id":"8421691423220","time_stamp":1678320000,"zip_code":"28005"}`
	assert.Equal(t, want, string(data))
}

func TestOrderID(t *testing.T) {
	t.Run("md5 of canonical form", func(t *testing.T) {
		data, err := fingerprint.CanonicalOrder(fields, stamp)
		require.NoError(t, err)
		sum := md5.Sum(data)

		id, err := fingerprint.OrderID(fields, stamp)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(sum[:]), id)
		assert.Len(t, id, 32)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := fingerprint.OrderID(fields, stamp)
		require.NoError(t, err)
		b, err := fingerprint.OrderID(fields, stamp)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("timestamp changes id", func(t *testing.T) {
		a, err := fingerprint.OrderID(fields, stamp)
		require.NoError(t, err)
		b, err := fingerprint.OrderID(fields, stamp.Add(time.Microsecond))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("every field changes id", func(t *testing.T) {
		base, err := fingerprint.OrderID(fields, stamp)
		require.NoError(t, err)

		mutations := []func(f *entities.OrderFields){
			func(f *entities.OrderFields) { f.ProductID = "4006381333931" },
			func(f *entities.OrderFields) { f.OrderType = entities.OrderTypePremium },
			func(f *entities.OrderFields) { f.DeliveryAddress = "C/LISBOA,5, MADRID, SPAIN" },
			func(f *entities.OrderFields) { f.PhoneNumber = "+34123456780" },
			func(f *entities.OrderFields) { f.ZipCode = "28006" },
		}
		for _, mutate := range mutations {
			f := fields
			mutate(&f)
			id, err := fingerprint.OrderID(f, stamp)
			require.NoError(t, err)
			assert.NotEqual(t, base, id)
		}
	})
}

func TestTrackingCode(t *testing.T) {
	orderID := "7628fa19bcb8e965bb73f8a180718f99"
	issued := time.Date(2023, 3, 9, 10, 30, 0, 123456000, time.UTC)
	day := issued.Add(24 * time.Hour)

	t.Run("signature layout", func(t *testing.T) {
		want := "{alg:SHA-256,typ:DS,order_id:7628fa19bcb8e965bb73f8a180718f99," +
			"issuedate:1678357800.123456,deliveryday:1678444200.123456}"
		assert.Equal(t, want, fingerprint.Signature(orderID, issued, day))
	})

	t.Run("sha256 of signature", func(t *testing.T) {
		sum := sha256.Sum256([]byte(fingerprint.Signature(orderID, issued, day)))
		code := fingerprint.TrackingCode(orderID, issued, day)
		assert.Equal(t, hex.EncodeToString(sum[:]), code)
		assert.Len(t, code, 64)
	})

	t.Run("round trip from stored record", func(t *testing.T) {
		code := fingerprint.TrackingCode(orderID, issued, day)
		s := entities.OrderShipping{OrderID: orderID, IssuedAt: issued, DeliveryDay: day, TrackingCode: code}
		assert.Equal(t, code, fingerprint.ShippingCode(s))
	})

	t.Run("edited dates invalidate code", func(t *testing.T) {
		code := fingerprint.TrackingCode(orderID, issued, day)
		assert.NotEqual(t, code, fingerprint.TrackingCode(orderID, issued, day.Add(time.Second)))
		assert.NotEqual(t, code, fingerprint.TrackingCode(orderID, issued.Add(-time.Second), day))
	})
}
