package scheduler

import (
	"fmt"
	"strings"

	"github.com/forgeos/forgeplan/internal/domain"
)

const (
	// Tasks longer than this are split into chunks.
	splitThresholdMin = 60
	// Vague tasks are undersized proxies for real work; inflate them to at
	// least this much before splitting.
	vagueFloorMin = 90
	// Maximum size of one split chunk.
	chunkMin = 45
)

// vagueVerbs flag titles that are generic action statements rather than
// concrete tasks.
var vagueVerbs = []string{"build", "create", "work on", "fix", "improve", "setup", "do", "research"}

// PlannerTask is an ephemeral scheduling copy of a task. The planner ID is
// unique within one scheduling run and keeps split chunks distinguishable;
// it is never persisted.
type PlannerTask struct {
	domain.Task
	PlannerID     string
	SplitParentID string
}

// IsVagueTitle reports whether the title equals or starts with one of the
// generic action verbs, case-insensitively.
func IsVagueTitle(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	for _, v := range vagueVerbs {
		if t == v || strings.HasPrefix(t, v+" ") {
			return true
		}
	}
	return false
}

// AutoSplit expands a task into schedulable chunks. A task is split when its
// estimate exceeds 60 minutes or its title is vague; vague tasks are
// inflated to a 90-minute floor first. Chunks are at most 45 minutes and
// numbered in the title; the final chunk absorbs the remainder. Tasks not
// meeting the split criteria pass through unchanged.
func AutoSplit(task domain.Task, baseID string) []PlannerTask {
	est := task.EffectiveEstimate()
	vague := IsVagueTitle(task.Title)
	if est <= splitThresholdMin && !vague {
		return []PlannerTask{{Task: task, PlannerID: baseID}}
	}

	remaining := est
	if vague && remaining < vagueFloorMin {
		remaining = vagueFloorMin
	}

	var chunks []PlannerTask
	for idx := 1; remaining > 0; idx++ {
		size := min(chunkMin, remaining)
		chunk := task
		chunk.Title = fmt.Sprintf("%s (chunk %d)", task.Title, idx)
		chunk.EstimateMin = size
		chunks = append(chunks, PlannerTask{
			Task:          chunk,
			PlannerID:     fmt.Sprintf("%s-chunk-%d", baseID, idx),
			SplitParentID: baseID,
		})
		remaining -= size
	}
	return chunks
}
