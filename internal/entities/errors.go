package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrMalformedReference = errors.New("malformed reference")
	ErrStorage            = errors.New("storage failure")

	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingOrderID     = fmt.Errorf("%w: order id field is missing", ErrInvalidInput)
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrInvalidDeliveryDay = errors.New("invalid delivery day")
)

// Field names used by ValidationError.
const (
	FieldProductID       = "product_id"
	FieldOrderType       = "order_type"
	FieldDeliveryAddress = "delivery_address"
	FieldPhoneNumber     = "phone_number"
	FieldZipCode         = "zip_code"
)

var fieldLabels = map[string]string{
	FieldProductID:       "invalid ean13 code",
	FieldOrderType:       "invalid order type",
	FieldDeliveryAddress: "invalid address",
	FieldPhoneNumber:     "invalid phone number",
	FieldZipCode:         "invalid zip code",
}

// ValidationError reports the first field that failed its format rule.
// Reason is stable and callers may compare it verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	label, ok := fieldLabels[e.Field]
	if !ok {
		label = "invalid " + e.Field
	}
	return label + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Reference kinds.
const (
	KindOrderID      = "order id"
	KindTrackingCode = "tracking code"
)

type NotFoundError struct {
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

type MalformedReferenceError struct {
	Kind  string
	Value string
}

func NewMalformedReferenceError(kind, value string) *MalformedReferenceError {
	return &MalformedReferenceError{Kind: kind, Value: value}
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("%s is not a well-formed hexadecimal string: %q", e.Kind, e.Value)
}

func (e *MalformedReferenceError) Unwrap() error {
	return ErrMalformedReference
}

// StorageError wraps a failure of the record store medium.
type StorageError struct {
	Op    string
	Stage string
	Err   error
}

func NewStorageError(op, stage string, err error) *StorageError {
	return &StorageError{Op: op, Stage: stage, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: failed to %s %s: %v", e.Op, e.Stage, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}
