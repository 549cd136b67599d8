package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koenjo741/smartcards/models"
)

func TestUpsertProject_InsertsAndReplacesInPlace(t *testing.T) {
	holder := newTestHolder(t, &fakeSnapshotRepository{})
	ctx := context.Background()

	require.NoError(t, UpsertProject(ctx, holder, models.Project{ID: "p1", Name: "Inbox", Position: 0}))
	require.NoError(t, UpsertProject(ctx, holder, models.Project{ID: "p2", Name: "Work", Position: 1}))

	// Replacing p1 must keep its slot in the ordering.
	require.NoError(t, UpsertProject(ctx, holder, models.Project{ID: "p1", Name: "Personal", Position: 0}))

	snap := holder.Snapshot()
	require.Len(t, snap.Projects, 2)
	assert.Equal(t, "Personal", snap.Projects[0].Name)
	assert.Equal(t, "Work", snap.Projects[1].Name)
}

func TestUpsertCard_InsertsAndReplacesInPlace(t *testing.T) {
	holder := newTestHolder(t, &fakeSnapshotRepository{})
	ctx := context.Background()

	require.NoError(t, UpsertCard(ctx, holder, models.Card{ID: "c1", Title: "buy milk"}))
	require.NoError(t, UpsertCard(ctx, holder, models.Card{ID: "c2", Title: "call bank"}))
	require.NoError(t, UpsertCard(ctx, holder, models.Card{ID: "c1", Title: "buy oat milk"}))

	snap := holder.Snapshot()
	require.Len(t, snap.Cards, 2)
	assert.Equal(t, "buy oat milk", snap.Cards[0].Title)
	assert.Equal(t, "call bank", snap.Cards[1].Title)
}

func TestDeleteCard(t *testing.T) {
	holder := newTestHolder(t, &fakeSnapshotRepository{})
	ctx := context.Background()

	require.NoError(t, UpsertCard(ctx, holder, models.Card{ID: "c1"}))
	require.NoError(t, UpsertCard(ctx, holder, models.Card{ID: "c2"}))

	require.NoError(t, DeleteCard(ctx, holder, "c1"))

	snap := holder.Snapshot()
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, "c2", snap.Cards[0].ID)

	// Unknown IDs are a no-op, not an error.
	require.NoError(t, DeleteCard(ctx, holder, "missing"))
	assert.Len(t, holder.Snapshot().Cards, 1)
}

func TestAddCustomColor_Deduplicates(t *testing.T) {
	holder := newTestHolder(t, &fakeSnapshotRepository{})
	ctx := context.Background()

	require.NoError(t, AddCustomColor(ctx, holder, "#a0a0a0"))
	require.NoError(t, AddCustomColor(ctx, holder, "#ffffff"))
	require.NoError(t, AddCustomColor(ctx, holder, "#a0a0a0"))

	assert.Equal(t, []string{"#a0a0a0", "#ffffff"}, holder.Snapshot().CustomColors)
}
