// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// ErrorBody is the json encoded error payload. Code is the stable
// machine-readable code of a business error, empty for validation and
// infrastructure errors.
type ErrorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Response holds the common response type for all APIs.
type Response struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// Error wraps the given err into the common response envelope.
func Error(code string, err error) Response {
	return Response{Error: &ErrorBody{Code: code, Message: err.Error()}}
}

// ValidationError builds a response for a request binding failure.
func ValidationError(err error) Response {
	return Response{Error: &ErrorBody{Message: err.Error()}}
}

// GetErrorMsg returns a human readable message for a failed binding
// validation on a single field.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must be greater or equal to " + fe.Param()
	case "max":
		return " must be less or equal to " + fe.Param()
	case "numeric":
		return " must contain only digits"
	case "accounttype":
		return " must be Savings or Checking"
	case "movementkind":
		return " must be Deposit or Withdrawal"
	}

	return " is invalid"
}
