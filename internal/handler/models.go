package handler

import (
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
)

// RegisterOrderRequest is an order as submitted by a client.
// Fields are kept untyped so that a wrong JSON type is reported by field validation.
type RegisterOrderRequest struct {
	ProductID       any `json:"product_id" swaggertype:"string" example:"8421691423220"`
	OrderType       any `json:"order_type" swaggertype:"string" example:"Regular"`
	DeliveryAddress any `json:"delivery_address" swaggertype:"string" example:"C/LISBOA,4, MADRID, SPAIN"`
	PhoneNumber     any `json:"phone_number" swaggertype:"string" example:"+34123456789"`
	ZipCode         any `json:"zip_code" swaggertype:"string" example:"28005"`
}

type RegisterOrderResponse struct {
	OrderID string `json:"order_id" example:"7628fa19bcb8e965bb73f8a180718f99"`
}

// ShipmentRequest is the shipment trigger document.
type ShipmentRequest struct {
	OrderID string `json:"order_id" example:"7628fa19bcb8e965bb73f8a180718f99"`
}

type ShipmentResponse struct {
	TrackingCode string `json:"tracking_code"`
}

// DeliveryRequest confirms a delivery. Without delivered_at the current time is used.
type DeliveryRequest struct {
	TrackingCode string     `json:"tracking_code" validate:"required"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}

type DeliveryResponse struct {
	TrackingCode string `json:"tracking_code"`
	Delivered    bool   `json:"delivered"`
}

// OrderStatus is everything known about one order.
type OrderStatus struct {
	OrderID         string     `json:"order_id"`
	Status          string     `json:"status" enums:"requested,shipped,delivered"`
	ProductID       string     `json:"product_id"`
	OrderType       string     `json:"order_type"`
	DeliveryAddress string     `json:"delivery_address"`
	PhoneNumber     string     `json:"phone_number"`
	ZipCode         string     `json:"zip_code"`
	TimeStamp       time.Time  `json:"time_stamp"`
	TrackingCode    string     `json:"tracking_code,omitempty"`
	IssuedAt        *time.Time `json:"issued_at,omitempty"`
	DeliveryDay     *time.Time `json:"delivery_day,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
}

func RegisterOrderJSONToEntity(o RegisterOrderRequest) entities.OrderInput {
	return entities.OrderInput{
		ProductID:       o.ProductID,
		OrderType:       o.OrderType,
		DeliveryAddress: o.DeliveryAddress,
		PhoneNumber:     o.PhoneNumber,
		ZipCode:         o.ZipCode,
	}
}

func OrderStatusEntityToJSON(s entities.OrderStatus) OrderStatus {
	res := OrderStatus{
		OrderID:         s.Request.OrderID,
		Status:          string(s.Status),
		ProductID:       s.Request.ProductID,
		OrderType:       string(s.Request.OrderType),
		DeliveryAddress: s.Request.DeliveryAddress,
		PhoneNumber:     s.Request.PhoneNumber,
		ZipCode:         s.Request.ZipCode,
		TimeStamp:       s.Request.TimeStamp,
	}
	if s.Shipping != nil {
		res.TrackingCode = s.Shipping.TrackingCode
		res.IssuedAt = &s.Shipping.IssuedAt
		res.DeliveryDay = &s.Shipping.DeliveryDay
	}
	if s.Delivery != nil {
		res.DeliveredAt = &s.Delivery.TimeStamp
	}
	return res
}
