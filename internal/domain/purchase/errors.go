package purchase

import (
	"fmt"
	"sort"
	"strings"

	"commission-tracker/internal/pkg/errs"
)

var (
	ErrValidation         = errs.New("validation failed")
	ErrInvalidTransition  = errs.New("step not allowed in current flow state")
	ErrFlowInvalid        = errs.New("flow is invalid")
	ErrAlreadyCommitted   = errs.New("flow already committed its client record")
	ErrNotCommitted       = errs.New("flow has no committed client record")
	ErrCheckoutNotStarted = errs.New("no checkout session for flow")

	ErrInvalidPrice             = errs.New("price must be non-negative with at most two decimals")
	ErrInvalidOffering          = errs.New("service offering requires id and name")
	ErrDuplicateOffering        = errs.New("duplicate service offering id")
	ErrEmptyCatalog             = errs.New("catalog has no offerings")
	ErrInvalidPaymentStatus     = errs.New("invalid payment status")
	ErrInvalidAppointmentStatus = errs.New("invalid appointment status")
)

// ValidationError carries per-field messages. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, msg string) *ValidationError {
	e := newValidationError()
	e.add(field, msg)
	return e
}
