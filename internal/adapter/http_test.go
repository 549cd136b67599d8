package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/models"
)

func newTestStore(t *testing.T, handler http.Handler) (RemoteStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := NewHTTPRemoteStore(config.ClientRemote{
		Address:        srv.URL,
		AccessToken:    "test-token",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return store, srv
}

// TestNewHTTPRemoteStore_InvalidAddress verifies address validation.
func TestNewHTTPRemoteStore_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRemoteStore(config.ClientRemote{Address: "   "}, logger.Nop())
	require.Error(t, err)
}

// TestLatestRevision_Success verifies decoding of the head call and that the
// bearer token plus the cache-bypass directive travel with it.
func TestLatestRevision_Success(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/doc/head", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		json.NewEncoder(w).Encode(models.HeadResponse{Revision: "rev-7"})
	}))

	rev, err := store.LatestRevision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Revision("rev-7"), rev)
}

// TestLatestRevision_NotFound verifies that a missing document maps to
// ErrNotFound rather than a generic failure.
func TestLatestRevision_NotFound(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no document", http.StatusNotFound)
	}))

	_, err := store.LatestRevision(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestLatestRevision_Unauthorized verifies the session-ending mapping.
func TestLatestRevision_Unauthorized(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))

	_, err := store.LatestRevision(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// TestDownload_ResolvesLatestFirst verifies the two-step download: a zero
// revision triggers a head call, and the content request names that exact
// revision.
func TestDownload_ResolvesLatestFirst(t *testing.T) {
	snap := models.Snapshot{Projects: []models.Project{{ID: "p1", Name: "Inbox"}}}

	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/doc/head":
			json.NewEncoder(w).Encode(models.HeadResponse{Revision: "rev-3"})
		case "/api/doc":
			assert.Equal(t, "rev-3", r.URL.Query().Get("rev"))
			w.Header().Set(models.HeaderDocRevision, "rev-3")
			json.NewEncoder(w).Encode(snap)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	got, rev, err := store.Download(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, models.Revision("rev-3"), rev)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "Inbox", got.Projects[0].Name)
}

// TestDownload_ExplicitRevision verifies that a supplied revision skips the
// head call.
func TestDownload_ExplicitRevision(t *testing.T) {
	headCalls := 0
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/doc/head":
			headCalls++
			json.NewEncoder(w).Encode(models.HeadResponse{Revision: "rev-9"})
		case "/api/doc":
			assert.Equal(t, "rev-5", r.URL.Query().Get("rev"))
			w.Header().Set(models.HeaderDocRevision, "rev-5")
			json.NewEncoder(w).Encode(models.Snapshot{})
		}
	}))

	_, rev, err := store.Download(context.Background(), "rev-5")
	require.NoError(t, err)
	assert.Equal(t, models.Revision("rev-5"), rev)
	assert.Zero(t, headCalls, "explicit revision must not trigger a head call")
}

// TestUpload_ConditionalCarriesIfMatch verifies CAS plumbing: the parent
// revision travels in If-Match and the new revision is decoded from the ack.
func TestUpload_ConditionalCarriesIfMatch(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "rev-1", r.Header.Get(models.HeaderIfMatch))
		json.NewEncoder(w).Encode(models.UploadResponse{Revision: "rev-2"})
	}))

	rev, err := store.Upload(context.Background(), models.Snapshot{}, "rev-1")
	require.NoError(t, err)
	assert.Equal(t, models.Revision("rev-2"), rev)
}

// TestUpload_UnconditionalOmitsIfMatch verifies that a zero parent sends no
// If-Match header at all.
func TestUpload_UnconditionalOmitsIfMatch(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[models.HeaderIfMatch]
		assert.False(t, present, "unconditional upload must not carry If-Match")
		json.NewEncoder(w).Encode(models.UploadResponse{Revision: "rev-1"})
	}))

	rev, err := store.Upload(context.Background(), models.Snapshot{}, "")
	require.NoError(t, err)
	assert.Equal(t, models.Revision("rev-1"), rev)
}

// TestUpload_StaleParentRejected verifies the optimistic-lock property: a
// 409 maps to ErrConflict and is never silently accepted.
func TestUpload_StaleParentRejected(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "revision mismatch", http.StatusConflict)
	}))

	_, err := store.Upload(context.Background(), models.Snapshot{}, "rev-stale")
	assert.ErrorIs(t, err, ErrConflict)
}

// TestUpload_ServerUnavailable verifies the ambiguous-failure mapping for
// 5xx responses.
func TestUpload_ServerUnavailable(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "store restarting", http.StatusServiceUnavailable)
	}))

	_, err := store.Upload(context.Background(), models.Snapshot{}, "rev-1")
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// TestTransportFailure_MapsToNetworkError verifies that a dead endpoint
// surfaces as the transient ErrNetwork, not as a conflict.
func TestTransportFailure_MapsToNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // kill it so the request fails at the transport level

	store, err := NewHTTPRemoteStore(config.ClientRemote{
		Address:        url,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = store.LatestRevision(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)

	_, err = store.Upload(context.Background(), models.Snapshot{}, "rev-1")
	assert.ErrorIs(t, err, ErrNetwork)
}

// TestSetToken_Trimmed verifies the token accessor pair.
func TestSetToken_Trimmed(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	store.SetToken("  abc  ")
	assert.Equal(t, "abc", store.Token())
}
