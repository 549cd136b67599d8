// Package devstore is a small in-memory blob service used during development
// instead of a real object store. It speaks the same three-operation contract
// the client expects: latest-revision metadata, download by revision, and
// conditional upload keyed on an opaque revision token.
package devstore

import (
	"sync"

	"github.com/koenjo741/smartcards/models"
)

type document struct {
	body     []byte
	revision models.Revision
}

// DocStore holds one document per user, plus every historical body keyed by
// the revision the store assigned to it. Revisions are opaque to clients.
type DocStore struct {
	mu      sync.RWMutex
	current map[int64]document
	history map[int64]map[models.Revision][]byte

	ids revisionSource
}

type revisionSource interface {
	Generate() string
}

func NewDocStore(ids revisionSource) *DocStore {
	return &DocStore{
		current: make(map[int64]document),
		history: make(map[int64]map[models.Revision][]byte),
		ids:     ids,
	}
}

// Head returns the current revision for the user, or [ErrNoDocument].
func (s *DocStore) Head(userID int64) (models.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.current[userID]
	if !ok {
		return "", ErrNoDocument
	}

	return doc.revision, nil
}

// Download returns the body stored under the given revision, or the current
// body when rev is zero. The returned revision always matches the body.
func (s *DocStore) Download(userID int64, rev models.Revision) ([]byte, models.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.current[userID]
	if !ok {
		return nil, "", ErrNoDocument
	}

	if rev.IsZero() {
		return cloneBytes(doc.body), doc.revision, nil
	}

	body, ok := s.history[userID][rev]
	if !ok {
		return nil, "", ErrUnknownRevision
	}

	return cloneBytes(body), rev, nil
}

// Upload stores a new body and assigns it a fresh revision. When parent is
// non-zero the write is conditional: it succeeds only if parent is still the
// current revision, otherwise [ErrRevisionMismatch] is returned. A zero
// parent is an unconditional overwrite.
func (s *DocStore) Upload(userID int64, body []byte, parent models.Revision) (models.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.current[userID]
	if !parent.IsZero() && (!exists || doc.revision != parent) {
		return "", ErrRevisionMismatch
	}

	rev := models.Revision(s.ids.Generate())
	stored := cloneBytes(body)

	s.current[userID] = document{body: stored, revision: rev}
	if s.history[userID] == nil {
		s.history[userID] = make(map[models.Revision][]byte)
	}
	s.history[userID][rev] = stored

	return rev, nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
