package errors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeParseFailure ErrorCode = "PARSE_FAILURE"
	CodeUnreadable   ErrorCode = "UNREADABLE"
	CodeUnsupported  ErrorCode = "NOT_SUPPORTED"
	CodeUsage        ErrorCode = "USAGE_ERROR"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// Context keys used across the linter.
const (
	CtxPath      = "path"
	CtxLanguage  = "language"
	CtxOperation = "operation"
)

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

func Wrap(err error, code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg, Err: err}
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
