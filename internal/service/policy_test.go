package service_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryPolicy(t *testing.T) {
	for _, s := range []string{"exact", "same_day", "on_or_after"} {
		p, err := service.ParseDeliveryPolicy(s)
		require.NoError(t, err)
		assert.Equal(t, service.DeliveryPolicy(s), p)
	}

	p, err := service.ParseDeliveryPolicy("")
	require.NoError(t, err)
	assert.Equal(t, service.DeliveryExact, p)

	_, err = service.ParseDeliveryPolicy("whenever")
	assert.Error(t, err)
}

func TestDeliveryPolicy_Accepts(t *testing.T) {
	day := time.Date(2023, 3, 16, 23, 30, 0, 123456000, time.UTC)
	madrid := time.FixedZone("CET", 3600)

	testCases := []struct {
		name   string
		policy service.DeliveryPolicy
		at     time.Time
		want   bool
	}{
		{name: "exact match", policy: service.DeliveryExact, at: day, want: true},
		{name: "exact other zone", policy: service.DeliveryExact, at: day.In(madrid), want: true},
		{name: "exact below precision", policy: service.DeliveryExact, at: day.Add(999 * time.Nanosecond), want: true},
		{name: "exact one microsecond off", policy: service.DeliveryExact, at: day.Add(time.Microsecond)},
		{name: "same day earlier", policy: service.DeliverySameDay, at: day.Add(-23 * time.Hour), want: true},
		{name: "same day uses utc date", policy: service.DeliverySameDay, at: day.Add(time.Hour).In(madrid)},
		{name: "on or after equal", policy: service.DeliveryOnOrAfter, at: day, want: true},
		{name: "on or after later", policy: service.DeliveryOnOrAfter, at: day.Add(48 * time.Hour), want: true},
		{name: "on or after earlier", policy: service.DeliveryOnOrAfter, at: day.Add(-time.Microsecond)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.policy.Accepts(day, tc.at))
		})
	}
}
