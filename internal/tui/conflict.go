// Package tui implements the interactive surfaces of the client: the
// conflict resolution prompt and the diagnostic diff rendering shown with it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/koenjo741/smartcards/internal/canon"
	"github.com/koenjo741/smartcards/models"
)

const maxRenderedValueLen = 80

// PromptResolution asks the user how to resolve a pending sync conflict. The
// diff is shown as context only; both choices replace a whole snapshot, never
// merge one.
func PromptResolution(diff canon.DiffTree) (models.ResolutionStrategy, error) {
	var choice string

	err := huh.NewSelect[string]().
		Title(titleStyle.Render("Sync conflict: this device and the cloud have diverged")).
		Description(RenderDiff(diff)).
		Options(
			huh.NewOption("Use the cloud version (discard edits on this device)", string(models.ResolutionAcceptCloud)),
			huh.NewOption("Use this device's version (overwrite the cloud)", string(models.ResolutionKeepLocal)),
		).
		Value(&choice).
		Run()
	if err != nil {
		return "", fmt.Errorf("conflict prompt: %w", err)
	}

	return models.ResolutionStrategy(choice), nil
}

// RenderDiff formats a structural diff for display, one differing field path
// per block with the local and cloud values beneath it.
func RenderDiff(diff canon.DiffTree) string {
	if len(diff) == 0 {
		return helpStyle.Render("No field-level differences detected.")
	}

	var b strings.Builder
	for _, path := range diff.Paths() {
		fd := diff[path]
		b.WriteString(pathStyle.Render(path))
		b.WriteString("\n")
		b.WriteString(localStyle.Render("  local: " + renderValue(fd.A)))
		b.WriteString("\n")
		b.WriteString(cloudStyle.Render("  cloud: " + renderValue(fd.B)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderValue(v any) string {
	if v == nil {
		return "(absent)"
	}

	s := fmt.Sprintf("%v", v)
	if len(s) > maxRenderedValueLen {
		s = s[:maxRenderedValueLen] + "..."
	}
	return s
}
