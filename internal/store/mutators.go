package store

import (
	"context"

	"github.com/koenjo741/smartcards/models"
)

// Typed mutators for producers of snapshot edits. Each one is a convenience
// wrapper over [SnapshotHolder.Mutate], so every call persists the result and
// emits a change notification.

// UpsertProject inserts the project or, when a project with the same ID
// already exists, replaces it in place preserving its slot in the user's
// ordering.
func UpsertProject(ctx context.Context, holder SnapshotHolder, project models.Project) error {
	return holder.Mutate(ctx, func(snap *models.Snapshot) {
		for i := range snap.Projects {
			if snap.Projects[i].ID == project.ID {
				snap.Projects[i] = project
				return
			}
		}
		snap.Projects = append(snap.Projects, project)
	})
}

// UpsertCard inserts the card or replaces the existing card with the same ID
// in place.
func UpsertCard(ctx context.Context, holder SnapshotHolder, card models.Card) error {
	return holder.Mutate(ctx, func(snap *models.Snapshot) {
		for i := range snap.Cards {
			if snap.Cards[i].ID == card.ID {
				snap.Cards[i] = card
				return
			}
		}
		snap.Cards = append(snap.Cards, card)
	})
}

// DeleteCard removes the card with the given ID. Deleting an unknown ID is a
// no-op; the edit still counts as a mutation.
func DeleteCard(ctx context.Context, holder SnapshotHolder, cardID string) error {
	return holder.Mutate(ctx, func(snap *models.Snapshot) {
		for i := range snap.Cards {
			if snap.Cards[i].ID == cardID {
				snap.Cards = append(snap.Cards[:i], snap.Cards[i+1:]...)
				return
			}
		}
	})
}

// AddCustomColor appends the color to the custom palette unless it is already
// present.
func AddCustomColor(ctx context.Context, holder SnapshotHolder, color string) error {
	return holder.Mutate(ctx, func(snap *models.Snapshot) {
		for _, c := range snap.CustomColors {
			if c == color {
				return
			}
		}
		snap.CustomColors = append(snap.CustomColors, color)
	})
}
