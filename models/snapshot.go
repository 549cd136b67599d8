package models

import "time"

// Snapshot is the unit of synchronization: the full application state that is
// written to and read from the remote document as a single blob. Ordering of
// Projects and Cards is user-controlled and must survive a round trip.
type Snapshot struct {
	Projects     []Project     `json:"projects"`
	Cards        []Card        `json:"cards"`
	CustomColors []string      `json:"customColors"`
	Meta         *SnapshotMeta `json:"meta"`
}

// SnapshotMeta carries optional bookkeeping fields. Absent fields are encoded
// as null and normalized away by the canonical serializer, so they never
// influence change detection.
type SnapshotMeta struct {
	SavedAt    *time.Time `json:"savedAt"`
	AppVersion string     `json:"appVersion,omitempty"`
}

// Project is a named grouping of cards.
type Project struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    *string `json:"color"`
	Position int     `json:"position"`
}

// Card is a single note card. ProjectIDs references Projects by ID; keeping
// the references valid is a producer invariant, the sync layer never enforces
// or repairs it.
type Card struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Body        string       `json:"body"`
	ProjectIDs  []string     `json:"projectIds"`
	Attachments []Attachment `json:"attachments"`
	DueAt       *time.Time   `json:"dueAt"`
	CreatedAt   *time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt"`
}

// Attachment is a pointer to a file stored outside the snapshot document.
// Attachments are synchronized as ordinary fields with no special-cased
// conflict handling.
type Attachment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RemotePath string `json:"remotePath"`
	Size       int64  `json:"size"`
}

// Clone returns a deep copy of the snapshot so that callers can hand it to
// other goroutines without sharing slices. The copy is value-preserving:
// absent and empty collections serialize differently, so nil-ness survives
// the clone and hash(s) == hash(s.Clone()) always holds.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Projects:     cloneSlice(s.Projects),
		Cards:        cloneSlice(s.Cards),
		CustomColors: cloneSlice(s.CustomColors),
	}
	for i := range out.Projects {
		if c := out.Projects[i].Color; c != nil {
			cc := *c
			out.Projects[i].Color = &cc
		}
	}
	for i := range out.Cards {
		out.Cards[i] = out.Cards[i].clone()
	}
	if s.Meta != nil {
		meta := *s.Meta
		if s.Meta.SavedAt != nil {
			at := *s.Meta.SavedAt
			meta.SavedAt = &at
		}
		out.Meta = &meta
	}
	return out
}

func (c Card) clone() Card {
	out := c
	out.ProjectIDs = cloneSlice(c.ProjectIDs)
	out.Attachments = cloneSlice(c.Attachments)
	out.DueAt = cloneTime(c.DueAt)
	out.CreatedAt = cloneTime(c.CreatedAt)
	out.UpdatedAt = cloneTime(c.UpdatedAt)
	return out
}

// cloneSlice copies a slice, keeping nil nil and empty empty.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	tt := *t
	return &tt
}
