package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteJSON_Success verifies body, status, and content type.
func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

// TestWriteJSON_MarshalFailure verifies the 500 fallback for unserializable
// values.
func TestWriteJSON_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, func() {}, http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestGetUserIDFromContext covers presence, absence, and wrong-type cases.
func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(7))
	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	ctx = context.WithValue(context.Background(), UserIDCtxKey, "not-an-int")
	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

// TestNewHTTPClient verifies that independent clients are produced.
func TestNewHTTPClient(t *testing.T) {
	a := NewHTTPClient()
	b := NewHTTPClient()
	require.NotNil(t, a.Client)
	require.NotNil(t, b.Client)
	assert.NotSame(t, a.Client, b.Client)
}

// TestUUIDGenerator_Generate verifies uniqueness and format plausibility.
func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.Generate()
		assert.Len(t, id, 36)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate UUID generated")
		seen[id] = struct{}{}
	}
}
