package services

import "skylogger/dronelog/internal/constants"

// DomainError is a user-correctable failure: a validation rule, a missing
// precondition, or a credential mismatch. Handlers surface the message as-is
// and never mutate state for one.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError builds a DomainError with the canonical message for a code.
func NewDomainError(code string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: constants.GetErrorMessage(code),
	}
}
