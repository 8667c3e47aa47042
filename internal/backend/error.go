package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode is a machine-readable classification of a backend failure.
// The backend currently only sends human-readable detail strings, so codes
// are derived from a lookup table here; if the backend ever grows a
// structured {code} field it is honored directly.
type ErrorCode string

const (
	CodeUnknown            ErrorCode = "UNKNOWN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	CodeLicenseTaken       ErrorCode = "LICENSE_TAKEN"
	CodePlateTaken         ErrorCode = "PLATE_TAKEN"
	CodeVehicleUnavailable ErrorCode = "VEHICLE_UNAVAILABLE"
	CodeConvertRejected    ErrorCode = "CONVERT_REJECTED"
	CodeTransport          ErrorCode = "TRANSPORT"
)

// Known backend detail substrings, keyed to the code they imply. Matching on
// message text is a stopgap for the current backend contract.
var detailCodes = []struct {
	substr string
	code   ErrorCode
}{
	{"Email already registered", CodeEmailTaken},
	{"Driver license already registered", CodeLicenseTaken},
	{"License plate already exists", CodePlateTaken},
	{"not available for the selected dates", CodeVehicleUnavailable},
	{"Cannot convert reservation", CodeConvertRejected},
	{"not found", CodeNotFound},
}

// APIError is the single error type every backend failure surfaces as:
// transport errors, non-2xx responses and undecodable bodies alike.
type APIError struct {
	Status  int // 0 for transport failures
	Code    ErrorCode
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether the error is a 404 from the backend.
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound || e.Code == CodeNotFound
}

// NewTransportError wraps a network-level failure.
func NewTransportError(err error) *APIError {
	return &APIError{Code: CodeTransport, Message: err.Error()}
}

// NewAPIError builds an APIError from a non-2xx response body.
func NewAPIError(status int, body []byte) *APIError {
	message := strings.TrimSpace(string(body))
	code := CodeUnknown

	var payload struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			message = payload.Detail
		}
		if payload.Code != "" {
			code = ErrorCode(payload.Code)
		}
	}

	if code == CodeUnknown {
		for _, dc := range detailCodes {
			if strings.Contains(message, dc.substr) {
				code = dc.code
				break
			}
		}
	}
	if code == CodeUnknown && status == http.StatusNotFound {
		code = CodeNotFound
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &APIError{Status: status, Code: code, Message: message}
}

// AsAPIError unwraps err to an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
