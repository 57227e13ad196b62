package domain

import "errors"

// Validation error codes for share submission. These are checked client-side
// before anything reaches the network, so the codes double as user-facing
// notice identifiers.
const (
	CodeNoRecordsSelected     = "NoRecordsSelected"
	CodeNoShareTargetSelected = "NoShareTargetSelected"
)

// ValidationError is a pre-submission rejection of a share request.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNoRecordsSelected = &ValidationError{
		Code:    CodeNoRecordsSelected,
		Message: "no records selected for sharing",
	}
	ErrNoShareTargetSelected = &ValidationError{
		Code:    CodeNoShareTargetSelected,
		Message: "select at least one channel, trust level, contact or partner",
	}
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
