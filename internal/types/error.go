package types

import (
	"fmt"
	"net/http"
)

// CustomError carries the status and error type the fiber ErrorHandler
// writes into the response envelope. Err is the underlying cause, if any.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Err     error  `json:"-"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %s: %v", e.Code, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s: %s", e.Code, e.Type, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Unauthenticated is a 401 of type "authentication".
func Unauthenticated(message string, cause error) *CustomError {
	return &CustomError{
		Code:    http.StatusUnauthorized,
		Message: message,
		Type:    "authentication",
		Err:     cause,
	}
}
