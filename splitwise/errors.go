package splitwise

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes of the API client.
type Kind string

const (
	// KindAuthentication means the credential is missing or was rejected
	// by the upstream service.
	KindAuthentication Kind = "authentication_error"
	// KindTransport means a network failure or a non-success HTTP status.
	KindTransport Kind = "transport_error"
	// KindMalformedResponse means a success status whose body is missing
	// the expected top-level key.
	KindMalformedResponse Kind = "malformed_response"
	// KindSchemaValidation means a response field did not match its
	// expected shape.
	KindSchemaValidation Kind = "schema_validation"
)

// APIError is the single error type surfaced by the Splitwise client. Kind
// selects the failure class; the remaining fields are populated where they
// apply.
type APIError struct {
	Kind       Kind
	Message    string
	HTTPStatus int    // set for transport and upstream-rejection errors
	Field      string // set for schema validation errors
	Body       string // raw response body, set for malformed responses
	Cause      error
}

func (e *APIError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("splitwise: %s: field %q: %s", e.Kind, e.Field, e.Message)
	case e.HTTPStatus != 0:
		return fmt.Sprintf("splitwise: %s (HTTP %d): %s", e.Kind, e.HTTPStatus, e.Message)
	default:
		return fmt.Sprintf("splitwise: %s: %s", e.Kind, e.Message)
	}
}

func (e *APIError) Unwrap() error { return e.Cause }

// AsAPIError unwraps err into an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func isKind(err error, kind Kind) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == kind
}

// IsAuthenticationError reports whether err is a missing or rejected credential.
func IsAuthenticationError(err error) bool { return isKind(err, KindAuthentication) }

// IsTransportError reports whether err is a network failure or error status.
func IsTransportError(err error) bool { return isKind(err, KindTransport) }

// IsMalformedResponseError reports whether err is a response missing its
// expected top-level key.
func IsMalformedResponseError(err error) bool { return isKind(err, KindMalformedResponse) }

// IsSchemaValidationError reports whether err is a field-shape mismatch.
func IsSchemaValidationError(err error) bool { return isKind(err, KindSchemaValidation) }
