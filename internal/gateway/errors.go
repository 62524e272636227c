package gateway

import (
	"errors"
	"fmt"
)

// коды ошибок API, единая таксономия для всех вызывающих
const (
	CodeValidation = "VALIDATION_FAILED"
	CodeAuth       = "AUTHENTICATION_FAILED"
	CodeNotFound   = "NOT_FOUND"
	CodeTransport  = "TRANSPORT_FAILURE"
	CodeUnknown    = "UNKNOWN"
)

type APIError struct {
	Code    string
	Message string
	Fields  map[string][]string // поле -> сообщения, только для VALIDATION_FAILED
	Status  int                 // HTTP-статус ответа, 0 если ответа не было
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewValidationError(fields map[string][]string) *APIError {
	return &APIError{
		Code:    CodeValidation,
		Message: "данные не прошли проверку",
		Fields:  fields,
	}
}

func codeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

func IsValidation(err error) bool {
	return codeOf(err) == CodeValidation
}

func IsAuth(err error) bool {
	return codeOf(err) == CodeAuth
}

func IsNotFound(err error) bool {
	return codeOf(err) == CodeNotFound
}

func IsTransport(err error) bool {
	return codeOf(err) == CodeTransport
}

// FieldErrors достаёт карту ошибок валидации, nil для прочих ошибок
func FieldErrors(err error) map[string][]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code == CodeValidation {
		return apiErr.Fields
	}
	return nil
}
