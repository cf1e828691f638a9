package scheduler

import (
	"math"
	"time"

	"github.com/forgeos/forgeplan/internal/domain"
)

// Scoring weights. Revenue-first: deal association and revenue type dominate
// everything except an imminent deadline.
const (
	urgencyWeight      = 20
	impactWeight       = 15
	dealBonus          = 80
	revenueTypeBonus   = 50
	blockedPenalty     = 999
	overdueBonus       = 120
	dueTodayBonus      = 60
	dueSoonBonus       = 30 // due within 2 days
	effortPenaltyPer15 = 2
	systemInPrimePen   = 200
)

// RevenueScore rates a task for one slot label on one day. It is a pure
// function of the task fields, the reference date and the label; ties are
// broken by the caller preserving input order.
func RevenueScore(task domain.Task, today time.Time, label SlotLabel) float64 {
	score := float64(task.EffectiveUrgency()*urgencyWeight + task.EffectiveImpact()*impactWeight)

	if task.DealID != "" {
		score += dealBonus
	}
	if task.Type == domain.TypeRevenue {
		score += revenueTypeBonus
	}
	if task.Status == domain.StatusBlocked {
		// Disqualifying, not just deprioritizing.
		score -= blockedPenalty
	}

	if task.DueDate != nil {
		switch days := daysBetween(today, *task.DueDate); {
		case days < 0:
			score += overdueBonus
		case days == 0:
			score += dueTodayBonus
		case days <= 2:
			score += dueSoonBonus
		}
	}

	score -= float64(task.EffectiveEstimate()) / 15 * effortPenaltyPer15

	// Keep systems work out of peak hours.
	if label == LabelPrime && task.Type == domain.TypeSystem {
		score -= systemInPrimePen
	}

	return score
}

// daysBetween returns the whole calendar days from the 'from' date to the
// 'to' date, negative when 'to' is in the past.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Floor(t.Sub(f).Hours() / 24))
}
