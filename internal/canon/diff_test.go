package canon

import (
	"testing"

	"github.com/koenjo741/smartcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiff_EqualValuesEmptyTree verifies that identical values produce an
// empty diff tree.
func TestDiff_EqualValuesEmptyTree(t *testing.T) {
	snap := models.Snapshot{Projects: []models.Project{{ID: "p1", Name: "Inbox"}}}

	tree, err := Diff(snap, snap.Clone())
	require.NoError(t, err)
	assert.Empty(t, tree)
}

// TestDiff_ScalarFieldChange verifies that a changed scalar field is reported
// under its dotted path with both sides.
func TestDiff_ScalarFieldChange(t *testing.T) {
	a := map[string]any{"meta": map[string]any{"appVersion": "1.0"}}
	b := map[string]any{"meta": map[string]any{"appVersion": "1.1"}}

	tree, err := Diff(a, b)
	require.NoError(t, err)

	require.Contains(t, tree, "meta.appVersion")
	assert.Equal(t, "1.0", tree["meta.appVersion"].A)
	assert.Equal(t, "1.1", tree["meta.appVersion"].B)
	assert.Len(t, tree, 1)
}

// TestDiff_ArraysComparedWhole verifies that any element-level difference
// reports the two full arrays rather than an element-wise diff.
func TestDiff_ArraysComparedWhole(t *testing.T) {
	a := models.Snapshot{CustomColors: []string{"#111111", "#222222"}}
	b := models.Snapshot{CustomColors: []string{"#222222", "#111111"}}

	tree, err := Diff(a, b)
	require.NoError(t, err)

	require.Contains(t, tree, "customColors")
	assert.Equal(t, []any{"#111111", "#222222"}, tree["customColors"].A)
	assert.Equal(t, []any{"#222222", "#111111"}, tree["customColors"].B)
}

// TestDiff_FieldOnlyOnOneSide verifies that a field present on a single side
// is reported with nil for the missing side.
func TestDiff_FieldOnlyOnOneSide(t *testing.T) {
	a := map[string]any{"title": "x"}
	b := map[string]any{}

	tree, err := Diff(a, b)
	require.NoError(t, err)

	require.Contains(t, tree, "title")
	assert.Equal(t, "x", tree["title"].A)
	assert.Nil(t, tree["title"].B)
}

// TestDiff_NullNormalizedBeforeCompare verifies that an explicit null and an
// absent field do not register as a difference.
func TestDiff_NullNormalizedBeforeCompare(t *testing.T) {
	a := map[string]any{"color": nil, "name": "Work"}
	b := map[string]any{"name": "Work"}

	tree, err := Diff(a, b)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

// TestDiffTree_PathsSorted verifies that Paths returns deterministic, sorted
// output for rendering.
func TestDiffTree_PathsSorted(t *testing.T) {
	tree := DiffTree{
		"z":   {},
		"a.b": {},
		"m":   {},
	}
	assert.Equal(t, []string{"a.b", "m", "z"}, tree.Paths())
}
