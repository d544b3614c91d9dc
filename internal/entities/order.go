package entities

import (
	"bytes"
	"encoding/gob"
	"strings"
	"time"
)

type OrderType string

const (
	OrderTypeRegular OrderType = "regular"
	OrderTypePremium OrderType = "premium"
)

// ParseOrderType matches s case-insensitively against the known order types.
func ParseOrderType(s string) (OrderType, bool) {
	switch t := OrderType(strings.ToLower(s)); t {
	case OrderTypeRegular, OrderTypePremium:
		return t, true
	default:
		return "", false
	}
}

// DeliveryDelay is the time between shipment and the expected delivery.
func (t OrderType) DeliveryDelay() time.Duration {
	if t == OrderTypePremium {
		return 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

// OrderInput holds raw field values as they arrive from a request payload.
// Values are untyped on purpose: a number where a string is expected is a validation failure,
// not a decode failure.
type OrderInput struct {
	ProductID       any `json:"product_id"`
	OrderType       any `json:"order_type"`
	DeliveryAddress any `json:"delivery_address"`
	PhoneNumber     any `json:"phone_number"`
	ZipCode         any `json:"zip_code"`
}

// OrderFields are the validated and normalized fields of an order.
type OrderFields struct {
	ProductID       string
	OrderType       OrderType
	DeliveryAddress string
	PhoneNumber     string
	ZipCode         string
}

type OrderRequest struct {
	OrderID string
	OrderFields
	TimeStamp time.Time
}

func (o *OrderRequest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *OrderRequest) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(OrderRequest{})
}
