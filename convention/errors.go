package convention

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports that a token value failed its rule or that a
// built/given name broke a global rule. It carries every violation
// message collected during the failing operation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError creates a ValidationError from violation messages.
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// IsValidation returns true if err is a validation failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// UnknownTokenError reports an operation referencing a token name that is
// not part of the convention.
type UnknownTokenError struct {
	Token  string
	Tokens []string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("Token '%s' is not defined. Available tokens: %v.", e.Token, e.Tokens)
}

// IsUnknownToken returns true if err references an undefined token.
func IsUnknownToken(err error) bool {
	var uerr *UnknownTokenError
	return errors.As(err, &uerr)
}
