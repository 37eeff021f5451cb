package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertEnvelope decodes the response envelope and unmarshals its data
// field into v when v is non-nil.
func AssertEnvelope(t *testing.T, resp *http.Response, expectedStatus int, v interface{}) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	err = json.Unmarshal(body, &envelope)
	require.NoError(t, err, "failed to unmarshal envelope: %s", string(body))
	assert.Equal(t, expectedStatus, envelope.Code, "envelope code mismatch")

	if v != nil {
		err = json.Unmarshal(envelope.Data, v)
		require.NoError(t, err, "failed to unmarshal envelope data: %s", string(envelope.Data))
	}
}

// AssertErrorResponse verifies the status code and that the envelope
// message contains the expected text.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var envelope struct {
		Message string `json:"message"`
	}
	err = json.Unmarshal(body, &envelope)
	require.NoError(t, err, "failed to unmarshal error body: %s", string(body))
	assert.Contains(t, envelope.Message, expectedMessage, "error message mismatch")
}
