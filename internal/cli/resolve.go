package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
)

// resolveTaskID resolves a task identifier which can be a full UUID, a UUID
// prefix, or an exact title (case-insensitive). Prefix matches must be
// unambiguous.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return "", fmt.Errorf("listing tasks: %w", err)
	}

	var prefixMatches []*domain.Task
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			prefixMatches = append(prefixMatches, t)
		}
	}
	for _, t := range tasks {
		if strings.EqualFold(t.Title, input) {
			return t.ID, nil
		}
	}

	switch len(prefixMatches) {
	case 1:
		return prefixMatches[0].ID, nil
	case 0:
		return "", fmt.Errorf("no task matches %q", input)
	default:
		return "", fmt.Errorf("task id %q is ambiguous (%d matches); use more characters", input, len(prefixMatches))
	}
}

// resolveDealID resolves a deal identifier: full UUID, UUID prefix, or exact
// name (case-insensitive).
func resolveDealID(ctx context.Context, app *App, input string) (string, error) {
	deals, err := app.Deals.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing deals: %w", err)
	}

	var prefixMatches []*domain.Deal
	for _, d := range deals {
		if d.ID == input {
			return d.ID, nil
		}
		if strings.HasPrefix(d.ID, input) {
			prefixMatches = append(prefixMatches, d)
		}
	}
	for _, d := range deals {
		if strings.EqualFold(d.Name, input) {
			return d.ID, nil
		}
	}

	switch len(prefixMatches) {
	case 1:
		return prefixMatches[0].ID, nil
	case 0:
		return "", fmt.Errorf("no deal matches %q", input)
	default:
		return "", fmt.Errorf("deal id %q is ambiguous (%d matches); use more characters", input, len(prefixMatches))
	}
}

// resolveBlockID resolves a calendar block id against the stored week shown
// by the anchor, accepting a full UUID or a unique prefix.
func resolveBlockID(ctx context.Context, app *App, input string, anchor time.Time) (string, error) {
	week, err := app.WeekPlan.Show(ctx, anchor)
	if err != nil {
		return "", fmt.Errorf("loading week plan: %w", err)
	}

	var prefixMatches []contract.CalendarBlock
	for _, blk := range week.Blocks {
		if blk.ID == input {
			return blk.ID, nil
		}
		if strings.HasPrefix(blk.ID, input) {
			prefixMatches = append(prefixMatches, blk)
		}
	}

	switch len(prefixMatches) {
	case 1:
		return prefixMatches[0].ID, nil
	case 0:
		return "", fmt.Errorf("no block in the week of %s matches %q", week.WeekStart, input)
	default:
		return "", fmt.Errorf("block id %q is ambiguous (%d matches); use more characters", input, len(prefixMatches))
	}
}
