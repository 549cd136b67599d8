package models

// Revision is the opaque version token returned by the remote store on every
// successful read or write. The store totally orders revisions internally;
// clients must treat them as equality-comparable tokens only and never parse
// or compare them for ordering.
type Revision string

// IsZero reports whether the revision is the empty token, meaning "no
// revision observed yet" (fresh session or document not created).
func (r Revision) IsZero() bool {
	return r == ""
}

func (r Revision) String() string {
	return string(r)
}
