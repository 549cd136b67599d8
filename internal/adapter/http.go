package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/utils"
	"github.com/koenjo741/smartcards/models"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the HTTP implementation of [RemoteStore]. It
// normalises and validates the base URL from remoteCfg.Address, configures
// the underlying HTTP client with the resolved base URL and request timeout,
// and stores the configured access token for the Authorization header.
//
// Returns an error if remoteCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(remoteCfg config.ClientRemote, logger *logger.Logger) (RemoteStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(remoteCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(remoteCfg.RequestTimeout)

	store := &httpRemoteStore{client: client, logger: logger}
	store.SetToken(remoteCfg.AccessToken)

	return store, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpRemoteStore) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteStore]. It returns the bearer token currently held,
// or an empty string if none has been set.
func (h *httpRemoteStore) Token() string {
	return h.token
}

// LatestRevision implements [RemoteStore]. It GETs the document head from
// GET /api/doc/head with a no-store cache directive so intermediaries can
// never serve a stale revision, and decodes the revision token from the
// response body.
func (h *httpRemoteStore) LatestRevision(ctx context.Context) (models.Revision, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Cache-Control", "no-store").
		Get("/api/doc/head")
	if err != nil {
		return "", fmt.Errorf("%w: head request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var head models.HeadResponse
	if err = json.Unmarshal(resp.Body(), &head); err != nil {
		return "", fmt.Errorf("decode head response: %w", err)
	}

	return head.Revision, nil
}

// Download implements [RemoteStore]. A zero rev is resolved via
// LatestRevision first; the content of that exact revision is then fetched
// from GET /api/doc so the returned snapshot and revision always belong
// together (one racy combined call could pair a fresh revision with older
// content, or the reverse).
func (h *httpRemoteStore) Download(ctx context.Context, rev models.Revision) (models.Snapshot, models.Revision, error) {
	if rev.IsZero() {
		latest, err := h.LatestRevision(ctx)
		if err != nil {
			return models.Snapshot{}, "", err
		}
		rev = latest
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParam("rev", rev.String()).
		Get("/api/doc")
	if err != nil {
		return models.Snapshot{}, "", fmt.Errorf("%w: download request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Snapshot{}, "", err
	}

	var snap models.Snapshot
	if err = json.Unmarshal(resp.Body(), &snap); err != nil {
		return models.Snapshot{}, "", fmt.Errorf("decode document body: %w", err)
	}

	if got := resp.Header().Get(models.HeaderDocRevision); got != "" {
		rev = models.Revision(got)
	}

	return snap, rev, nil
}

// Upload implements [RemoteStore]. It PUTs the snapshot to PUT /api/doc,
// carrying parent in the If-Match header when non-zero so the store can
// enforce compare-and-swap semantics, and returns the newly assigned
// revision.
func (h *httpRemoteStore) Upload(ctx context.Context, snap models.Snapshot, parent models.Revision) (models.Revision, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(snap)
	if !parent.IsZero() {
		req.SetHeader(models.HeaderIfMatch, parent.String())
	}

	resp, err := req.Put("/api/doc")
	if err != nil {
		return "", fmt.Errorf("%w: upload request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var ack models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if ack.Revision.IsZero() {
		return "", fmt.Errorf("upload response carries no revision")
	}

	return ack.Revision, nil
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
