// Package validation checks raw order fields and lifecycle references.
//
// Every field validator returns the normalized value or a *entities.ValidationError whose
// Reason is part of the public contract.
package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/go-playground/validator/v10"
)

const (
	ean13Length = 13

	minAddressLength = 20
	maxAddressLength = 100

	phoneNumberLength = 12
	phoneAreaCode     = "+34"

	zipCodeLength = 5
	minZipCode    = 1001
	maxZipCode    = 52006
)

// ProductID checks that v is an EAN13 code.
func ProductID(v any) (string, error) {
	s, ok := v.(string)
	if !ok || len(s) != ean13Length || !isDigits(s) {
		return "", entities.NewValidationError(entities.FieldProductID, "not a 13 digit string")
	}
	if int(s[12]-'0') != ean13CheckDigit(s[:12]) {
		return "", entities.NewValidationError(entities.FieldProductID, "check digit is incorrect")
	}
	return s, nil
}

// ean13CheckDigit expects exactly 12 ascii digits.
func ean13CheckDigit(digits string) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	// ceil(sum/10)*10 - sum, zero when sum is already a multiple of ten
	return (10 - sum%10) % 10
}

// OrderType matches v case-insensitively and returns the lowercase type.
func OrderType(v any) (entities.OrderType, error) {
	s, ok := v.(string)
	if !ok {
		return "", entities.NewValidationError(entities.FieldOrderType, "not a string")
	}
	t, ok := entities.ParseOrderType(s)
	if !ok {
		return "", entities.NewValidationError(entities.FieldOrderType, "string is invalid")
	}
	return t, nil
}

func DeliveryAddress(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", entities.NewValidationError(entities.FieldDeliveryAddress, "address is not a string")
	}
	n := utf8.RuneCountInString(s)
	if n > maxAddressLength {
		return "", entities.NewValidationError(entities.FieldDeliveryAddress, "address is too long")
	}
	if n < minAddressLength {
		return "", entities.NewValidationError(entities.FieldDeliveryAddress, "address is too short")
	}
	if !strings.Contains(s, " ") {
		return "", entities.NewValidationError(entities.FieldDeliveryAddress, "address should contain a space")
	}
	return s, nil
}

func PhoneNumber(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", entities.NewValidationError(entities.FieldPhoneNumber, "phone number is not a string")
	}
	n := utf8.RuneCountInString(s)
	if n > phoneNumberLength {
		return "", entities.NewValidationError(entities.FieldPhoneNumber, "phone number is too long")
	}
	if n < phoneNumberLength {
		return "", entities.NewValidationError(entities.FieldPhoneNumber, "phone number is too short")
	}
	if !strings.HasPrefix(s, phoneAreaCode) {
		return "", entities.NewValidationError(entities.FieldPhoneNumber, "wrong area code")
	}
	return s, nil
}

func ZipCode(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", entities.NewValidationError(entities.FieldZipCode, "zip code not a string")
	}
	if utf8.RuneCountInString(s) != zipCodeLength {
		return "", entities.NewValidationError(entities.FieldZipCode, "zip code not 5 characters")
	}
	if !isDigits(s) {
		return "", entities.NewValidationError(entities.FieldZipCode, "characters are not digits")
	}
	n, _ := strconv.Atoi(s)
	if n < minZipCode {
		return "", entities.NewValidationError(entities.FieldZipCode, "zip code is below range")
	}
	if n > maxZipCode {
		return "", entities.NewValidationError(entities.FieldZipCode, "zip code is above range")
	}
	return s, nil
}

// Order runs the field validators in their fixed order and stops at the first failure.
func Order(in entities.OrderInput) (entities.OrderFields, error) {
	var (
		out       entities.OrderFields
		orderType string
	)

	steps := []struct {
		raw   any
		check func(any) (string, error)
		dst   *string
	}{
		{in.ProductID, ProductID, &out.ProductID},
		{in.OrderType, func(v any) (string, error) {
			t, err := OrderType(v)
			return string(t), err
		}, &orderType},
		{in.DeliveryAddress, DeliveryAddress, &out.DeliveryAddress},
		{in.PhoneNumber, PhoneNumber, &out.PhoneNumber},
		{in.ZipCode, ZipCode, &out.ZipCode},
	}

	for _, step := range steps {
		v, err := step.check(step.raw)
		if err != nil {
			return entities.OrderFields{}, err
		}
		*step.dst = v
	}

	out.OrderType = entities.OrderType(orderType)
	return out, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// References checks order ids and tracking codes before they reach the store.
type References struct {
	validate *validator.Validate
}

func NewReferences() *References {
	return &References{validate: validator.New()}
}

// hexadecimal alone accepts a 0x prefix, which is never part of a digest.
const (
	orderIDRule      = "required,len=32,hexadecimal,excludesall=xX"
	trackingCodeRule = "required,len=64,hexadecimal,excludesall=xX"
)

// OrderID accepts a 32 character hexadecimal string, case-insensitive.
func (r *References) OrderID(id string) error {
	if err := r.validate.Var(id, orderIDRule); err != nil {
		return entities.NewMalformedReferenceError(entities.KindOrderID, id)
	}
	return nil
}

// TrackingCode accepts a 64 character hexadecimal string, case-insensitive.
func (r *References) TrackingCode(code string) error {
	if err := r.validate.Var(code, trackingCodeRule); err != nil {
		return entities.NewMalformedReferenceError(entities.KindTrackingCode, code)
	}
	return nil
}
