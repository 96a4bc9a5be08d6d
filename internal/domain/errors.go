package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// Message keys carried by ValidationError. The HTTP layer resolves them in the request locale.
const (
	MsgCustomerIncomplete = "customer_incomplete"
	MsgCartEmpty          = "cart_empty"
	MsgUserIncomplete     = "user_incomplete"
	MsgInvalidBody        = "invalid_body"
)

// ValidationError reports a payload that is missing required fields.
type ValidationError struct {
	Key    string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return "validation: " + e.Key + ": " + e.Detail
	}
	return "validation: " + e.Key
}

// NewValidationError builds a ValidationError for the given message key.
func NewValidationError(key string) *ValidationError {
	return &ValidationError{Key: key}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
