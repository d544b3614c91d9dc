package entities

import (
	"math"
	"time"
)

type OrderShipping struct {
	OrderID      string
	ProductID    string
	PhoneNumber  string
	IssuedAt     time.Time
	DeliveryDay  time.Time
	TrackingCode string
}

type DeliveryRecord struct {
	TrackingCode string
	TimeStamp    time.Time
}

type Status string

const (
	StatusRequested Status = "requested"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// OrderStatus is a read view over all records known for one order.
type OrderStatus struct {
	Request  OrderRequest
	Status   Status
	Shipping *OrderShipping
	Delivery *DeliveryRecord
}

// Truncate brings t to the precision kept by every record store.
func Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// EpochSeconds renders t as fractional seconds since the Unix epoch.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}

// FromEpochSeconds is the inverse of EpochSeconds at microsecond precision.
func FromEpochSeconds(s float64) time.Time {
	return time.UnixMicro(int64(math.Round(s * 1e6))).UTC()
}
