package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ValidationError represents a 422 response from the platform
type ValidationError struct {
	Summary string                 `json:"summary"`
	Errors  map[string]interface{} `json:"errors"`
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if ve.Summary != "" {
		return ve.Summary
	}
	return "Validation error occurred"
}

// PrintValidationError prints the validation error to the console
func (ve *ValidationError) PrintValidationError() {
	fmt.Printf("Validation error: %s\n", ve.Error())
	for field, message := range ve.Errors {
		switch v := message.(type) {
		case string:
			fmt.Printf("  %s: %s\n", field, v)
		case []interface{}:
			for _, m := range v {
				fmt.Printf("  %s: %v\n", field, m)
			}
		}
	}
}

// APIError represents a generic non-2xx response
type APIError struct {
	StatusCode int
	Body       string
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       body,
	}
}

// Error implements the error interface for APIError
func (ae *APIError) Error() string {
	return fmt.Sprintf("API error (status code %d):\n%s\n", ae.StatusCode, ae.Body)
}

// ParseAPIError determines the type of error and returns the appropriate error struct
func ParseAPIError(statusCode int, body string) error {
	if statusCode == http.StatusUnprocessableEntity {
		var validationErr ValidationError
		if err := json.Unmarshal([]byte(body), &validationErr); err == nil {
			return &validationErr
		}
	}
	return NewAPIError(statusCode, body)
}
