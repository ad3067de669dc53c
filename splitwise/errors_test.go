package splitwise

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessages(t *testing.T) {
	err := &APIError{Kind: KindTransport, HTTPStatus: 503, Message: "service unavailable"}
	assert.Equal(t, `splitwise: transport_error (HTTP 503): service unavailable`, err.Error())

	err = &APIError{Kind: KindSchemaValidation, Field: "cost", Message: "expected string, got number"}
	assert.Equal(t, `splitwise: schema_validation: field "cost": expected string, got number`, err.Error())

	err = &APIError{Kind: KindAuthentication, Message: "API key is required"}
	assert.Equal(t, `splitwise: authentication_error: API key is required`, err.Error())
}

func TestPredicatesUnwrapWrappedErrors(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("get_groups: %w", &APIError{Kind: KindMalformedResponse, Message: "missing key", Cause: cause})

	assert.True(t, IsMalformedResponseError(wrapped))
	assert.False(t, IsTransportError(wrapped))

	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.ErrorIs(t, apiErr, cause)
}
