// Package fingerprint derives order identifiers and tracking codes from record content.
package fingerprint

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
)

const (
	Algorithm = "SHA-256"
	Type      = "DS"
)

// CanonicalOrder is the exact byte sequence hashed into an order id.
// Keys are sorted, so the encoding does not depend on field declaration order.
func CanonicalOrder(fields entities.OrderFields, timeStamp time.Time) ([]byte, error) {
	doc := map[string]any{
		"product_id":       fields.ProductID,
		"order_type":       string(fields.OrderType),
		"delivery_address": fields.DeliveryAddress,
		"phone_number":     fields.PhoneNumber,
		"zip_code":         fields.ZipCode,
		"time_stamp":       json.Number(FormatEpoch(timeStamp)),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}
	return data, nil
}

// OrderID is the md5 digest of CanonicalOrder, hex encoded.
func OrderID(fields entities.OrderFields, timeStamp time.Time) (string, error) {
	data, err := CanonicalOrder(fields, timeStamp)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}

// Signature is the string signed into a tracking code. Field order is fixed.
func Signature(orderID string, issuedAt, deliveryDay time.Time) string {
	var b strings.Builder
	b.WriteString("{alg:")
	b.WriteString(Algorithm)
	b.WriteString(",typ:")
	b.WriteString(Type)
	b.WriteString(",order_id:")
	b.WriteString(orderID)
	b.WriteString(",issuedate:")
	b.WriteString(FormatEpoch(issuedAt))
	b.WriteString(",deliveryday:")
	b.WriteString(FormatEpoch(deliveryDay))
	b.WriteString("}")
	return b.String()
}

func TrackingCode(orderID string, issuedAt, deliveryDay time.Time) string {
	sum := sha256.Sum256([]byte(Signature(orderID, issuedAt, deliveryDay)))
	return hex.EncodeToString(sum[:])
}

// ShippingCode recomputes the tracking code from a stored shipping record's own fields.
func ShippingCode(s entities.OrderShipping) string {
	return TrackingCode(s.OrderID, s.IssuedAt, s.DeliveryDay)
}

// FormatEpoch renders t as epoch seconds in the shortest decimal form.
func FormatEpoch(t time.Time) string {
	return strconv.FormatFloat(entities.EpochSeconds(t), 'f', -1, 64)
}
