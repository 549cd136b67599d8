package canon

import (
	"testing"
	"time"

	"github.com/koenjo741/smartcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHash_NullFieldsDropped verifies that a snapshot with absent optional
// fields hashes identically to one where those fields are explicit nulls.
func TestHash_NullFieldsDropped(t *testing.T) {
	withNil := models.Snapshot{
		Projects: []models.Project{{ID: "p1", Name: "Inbox", Color: nil}},
	}
	// same structure decoded from JSON that spells the null out
	var fromJSON map[string]any = map[string]any{
		"projects":     []any{map[string]any{"id": "p1", "name": "Inbox", "color": nil, "position": float64(0)}},
		"cards":        nil,
		"customColors": nil,
		"meta":         nil,
	}

	h1, err := Hash(withNil)
	require.NoError(t, err)
	h2, err := Hash(fromJSON)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
}

// TestHash_KeyOrderIndependent verifies that key order never influences the
// hash.
func TestHash_KeyOrderIndependent(t *testing.T) {
	a := map[string]any{"title": "x", "body": "y", "id": "1"}
	b := map[string]any{"id": "1", "body": "y", "title": "x"}

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
}

// TestHash_EmptyValuesPreserved verifies that empty strings and empty
// collections are meaningful states, distinct from absent fields.
func TestHash_EmptyValuesPreserved(t *testing.T) {
	empty := map[string]any{"customColors": []any{}}
	absent := map[string]any{"customColors": nil}

	hEmpty, err := Hash(empty)
	require.NoError(t, err)
	hAbsent, err := Hash(absent)
	require.NoError(t, err)

	assert.NotEqual(t, hEmpty, hAbsent, "empty collection must not collapse to absent")

	withEmptyString := map[string]any{"title": ""}
	withoutTitle := map[string]any{}

	hes, err := Hash(withEmptyString)
	require.NoError(t, err)
	hwt, err := Hash(withoutTitle)
	require.NoError(t, err)

	assert.NotEqual(t, hes, hwt, "empty string must not collapse to absent")
}

// TestHash_ArrayOrderSignificant verifies that array order is preserved and
// significant: reordering projects changes the hash.
func TestHash_ArrayOrderSignificant(t *testing.T) {
	a := models.Snapshot{Projects: []models.Project{{ID: "p1"}, {ID: "p2"}}}
	b := models.Snapshot{Projects: []models.Project{{ID: "p2"}, {ID: "p1"}}}

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)

	assert.NotEqual(t, ha, hb)
}

// TestHash_ContentChangeChangesHash verifies that a real mutation is always
// visible in the hash.
func TestHash_ContentChangeChangesHash(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	base := models.Snapshot{
		Cards: []models.Card{{ID: "c1", Title: "groceries", CreatedAt: &now}},
	}
	edited := base.Clone()
	edited.Cards[0].Title = "groceries!"

	hBase, err := Hash(base)
	require.NoError(t, err)
	hEdited, err := Hash(edited)
	require.NoError(t, err)

	assert.NotEqual(t, hBase, hEdited)
}

// TestHash_Deterministic verifies that hashing the same value repeatedly
// produces the same string.
func TestHash_Deterministic(t *testing.T) {
	snap := models.Snapshot{
		Projects:     []models.Project{{ID: "p1", Name: "Work", Position: 2}},
		Cards:        []models.Card{{ID: "c1", Title: "t", ProjectIDs: []string{"p1"}}},
		CustomColors: []string{"#aabbcc"},
	}

	first, err := Hash(snap)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		h, err := Hash(snap)
		require.NoError(t, err)
		assert.Equal(t, first, h)
	}
}

// TestHash_CloneHashesEqual verifies that a deep clone is indistinguishable
// from its source for sync purposes.
func TestHash_CloneHashesEqual(t *testing.T) {
	color := "#112233"
	due := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	snap := models.Snapshot{
		Projects: []models.Project{{ID: "p1", Name: "Home", Color: &color}},
		Cards:    []models.Card{{ID: "c1", Title: "fix sink", DueAt: &due, Attachments: []models.Attachment{{ID: "a1", Name: "photo.jpg", Size: 1024}}}},
	}

	h1, err := Hash(snap)
	require.NoError(t, err)
	h2, err := Hash(snap.Clone())
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
}

// TestNormalize_NestedNulls verifies that nulls are stripped recursively, not
// just at the top level.
func TestNormalize_NestedNulls(t *testing.T) {
	v := map[string]any{
		"meta": map[string]any{"savedAt": nil, "appVersion": "1.0"},
	}

	norm, err := Normalize(v)
	require.NoError(t, err)

	meta, ok := norm.(map[string]any)["meta"].(map[string]any)
	require.True(t, ok)
	_, hasSavedAt := meta["savedAt"]
	assert.False(t, hasSavedAt)
	assert.Equal(t, "1.0", meta["appVersion"])
}
