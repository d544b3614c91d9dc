package service

import (
	"fmt"
	"time"
)

// DeliveryPolicy decides whether a confirmation time is acceptable for a delivery day.
type DeliveryPolicy string

const (
	// DeliveryExact accepts only the delivery day itself, to the microsecond.
	DeliveryExact     DeliveryPolicy = "exact"
	DeliverySameDay   DeliveryPolicy = "same_day"
	DeliveryOnOrAfter DeliveryPolicy = "on_or_after"
)

func ParseDeliveryPolicy(s string) (DeliveryPolicy, error) {
	switch p := DeliveryPolicy(s); p {
	case DeliveryExact, DeliverySameDay, DeliveryOnOrAfter:
		return p, nil
	case "":
		return DeliveryExact, nil
	default:
		return "", fmt.Errorf("unknown delivery policy %q", s)
	}
}

// Accepts reports whether a delivery confirmed at confirmedAt satisfies deliveryDay.
// Both times are compared in UTC at microsecond precision.
func (p DeliveryPolicy) Accepts(deliveryDay, confirmedAt time.Time) bool {
	day := deliveryDay.UTC().Truncate(time.Microsecond)
	at := confirmedAt.UTC().Truncate(time.Microsecond)

	switch p {
	case DeliverySameDay:
		y1, m1, d1 := day.Date()
		y2, m2, d2 := at.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case DeliveryOnOrAfter:
		return !at.Before(day)
	default:
		return at.Equal(day)
	}
}
