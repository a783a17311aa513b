package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
}

func decode(body string) (sample, error) {
	var s sample
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	err := DecodeJSON(httptest.NewRecorder(), req, &s)
	return s, err
}

func TestDecodeJSON(t *testing.T) {
	s, err := decode(`{"name":"escribe"}`)
	require.NoError(t, err)
	assert.Equal(t, "escribe", s.Name)

	_, err = decode(`{"name":"a","other":1}`)
	assert.Error(t, err, "Unknown fields are rejected")

	_, err = decode(`{"name":"a"}{"name":"b"}`)
	assert.Error(t, err, "Trailing data is rejected")

	_, err = decode(`not json`)
	assert.Error(t, err)

	_, err = decode(`{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`)
	assert.Error(t, err, "Oversized bodies are rejected")
}
