package models

// Wire shapes and header names shared by the remote store client and the
// development blob store. Any object storage with conditional-write support
// satisfies the same three-operation contract; these types only describe the
// built-in HTTP rendition of it.

// HeadResponse is the body of the cheap latest-revision metadata call.
type HeadResponse struct {
	Revision Revision `json:"revision"`
}

// UploadResponse acknowledges a successful document write with the revision
// the store assigned to it.
type UploadResponse struct {
	Revision Revision `json:"revision"`
}

// SessionRequest asks the devstore to issue a bearer token for a user.
type SessionRequest struct {
	UserID int64 `json:"user_id"`
}

// SessionResponse carries the issued bearer token.
type SessionResponse struct {
	Token string `json:"token"`
}

const (
	// HeaderIfMatch carries the parent revision of a conditional upload. An
	// absent header means an unconditional overwrite.
	HeaderIfMatch = "If-Match"

	// HeaderDocRevision carries the revision of a downloaded document body so
	// that snapshot and revision are returned as a mutually consistent pair.
	HeaderDocRevision = "X-Doc-Revision"
)
