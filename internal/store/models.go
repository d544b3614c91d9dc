package store

import (
	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
)

// Records are the canonical field maps written to every backend.
// Keys match the entity field names; timestamps are epoch seconds.

type OrderRequestRecord struct {
	OrderID         string  `json:"order_id"`
	ProductID       string  `json:"product_id"`
	OrderType       string  `json:"order_type"`
	DeliveryAddress string  `json:"delivery_address"`
	PhoneNumber     string  `json:"phone_number"`
	ZipCode         string  `json:"zip_code"`
	TimeStamp       float64 `json:"time_stamp"`
}

type OrderShippingRecord struct {
	OrderID      string  `json:"order_id"`
	ProductID    string  `json:"product_id"`
	PhoneNumber  string  `json:"phone_number"`
	IssuedAt     float64 `json:"issued_at"`
	DeliveryDay  float64 `json:"delivery_day"`
	TrackingCode string  `json:"tracking_code"`
}

type DeliveryRecord struct {
	TrackingCode string  `json:"tracking_code"`
	TimeStamp    float64 `json:"time_stamp"`
}

func OrderRequestToRecord(o entities.OrderRequest) OrderRequestRecord {
	return OrderRequestRecord{
		OrderID:         o.OrderID,
		ProductID:       o.ProductID,
		OrderType:       string(o.OrderType),
		DeliveryAddress: o.DeliveryAddress,
		PhoneNumber:     o.PhoneNumber,
		ZipCode:         o.ZipCode,
		TimeStamp:       entities.EpochSeconds(o.TimeStamp),
	}
}

func OrderRequestToEntity(r OrderRequestRecord) entities.OrderRequest {
	return entities.OrderRequest{
		OrderID: r.OrderID,
		OrderFields: entities.OrderFields{
			ProductID:       r.ProductID,
			OrderType:       entities.OrderType(r.OrderType),
			DeliveryAddress: r.DeliveryAddress,
			PhoneNumber:     r.PhoneNumber,
			ZipCode:         r.ZipCode,
		},
		TimeStamp: entities.FromEpochSeconds(r.TimeStamp),
	}
}

func OrderShippingToRecord(s entities.OrderShipping) OrderShippingRecord {
	return OrderShippingRecord{
		OrderID:      s.OrderID,
		ProductID:    s.ProductID,
		PhoneNumber:  s.PhoneNumber,
		IssuedAt:     entities.EpochSeconds(s.IssuedAt),
		DeliveryDay:  entities.EpochSeconds(s.DeliveryDay),
		TrackingCode: s.TrackingCode,
	}
}

func OrderShippingToEntity(r OrderShippingRecord) entities.OrderShipping {
	return entities.OrderShipping{
		OrderID:      r.OrderID,
		ProductID:    r.ProductID,
		PhoneNumber:  r.PhoneNumber,
		IssuedAt:     entities.FromEpochSeconds(r.IssuedAt),
		DeliveryDay:  entities.FromEpochSeconds(r.DeliveryDay),
		TrackingCode: r.TrackingCode,
	}
}

func DeliveryToRecord(d entities.DeliveryRecord) DeliveryRecord {
	return DeliveryRecord{
		TrackingCode: d.TrackingCode,
		TimeStamp:    entities.EpochSeconds(d.TimeStamp),
	}
}

func DeliveryToEntity(r DeliveryRecord) entities.DeliveryRecord {
	return entities.DeliveryRecord{
		TrackingCode: r.TrackingCode,
		TimeStamp:    entities.FromEpochSeconds(r.TimeStamp),
	}
}
