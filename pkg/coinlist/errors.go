package coinlist

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when the access key or secret cannot be used for signing.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnsupportedMethod is returned for HTTP verbs the exchange does not serve.
	ErrUnsupportedMethod = errors.New("unsupported http method")

	// ErrInvalidResponse is returned when a response body is not valid JSON.
	ErrInvalidResponse = errors.New("invalid json response")
)

// APIError is an exchange-level error reported by a typed endpoint call
// when the exchange answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("coinlist: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("coinlist: status %d", e.StatusCode)
}

// newAPIError extracts a human-readable message from an error payload.
// CoinList reports errors as {"message": "..."}; some gateways use "error".
func newAPIError(status int, body json.RawMessage) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}
