package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// minRangeMin is the smallest free range worth keeping after subtraction;
// anything shorter than one slot increment is unusable.
const minRangeMin = 15

// TimeRange is a half-open [Start, End) span of "HH:MM" times within one
// day. Comparisons always go through minutes-since-midnight.
type TimeRange struct {
	Start string
	End   string
}

// ParseRangeList parses comma-separated "HH:MM-HH:MM" tokens. Empty or
// whitespace input yields nil. Tokens are not validated: malformed times
// pass through and degrade to midnight at comparison time.
func ParseRangeList(text string) []TimeRange {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var ranges []TimeRange
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		r := TimeRange{Start: tok}
		if start, end, ok := strings.Cut(tok, "-"); ok {
			r.Start = strings.TrimSpace(start)
			r.End = strings.TrimSpace(end)
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// TimeToMinutes converts "HH:MM" to minutes since midnight. Missing or
// malformed input is treated as "00:00" rather than erroring.
func TimeToMinutes(t string) int {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0
	}
	return h*60 + m
}

// MinutesToTime formats minutes since midnight as zero-padded "HH:MM".
// The caller must keep m within 0..1439; there is no day-overflow handling.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// InAnyRange reports whether t falls inside any of the given half-open
// ranges.
func InAnyRange(t string, ranges []TimeRange) bool {
	tm := TimeToMinutes(t)
	for _, r := range ranges {
		if tm >= TimeToMinutes(r.Start) && tm < TimeToMinutes(r.End) {
			return true
		}
	}
	return false
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share any minutes.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	aS, aE := TimeToMinutes(aStart), TimeToMinutes(aEnd)
	bS, bE := TimeToMinutes(bStart), TimeToMinutes(bEnd)
	return max(aS, bS) < min(aE, bE)
}

// SubtractRanges returns the free ranges inside [baseStart, baseEnd) after
// removing every blocker. Each blocker splits an overlapping free range into
// up to two remainders; the working set stays disjoint after every pass, so
// blocker order does not affect the result. Remainders shorter than 15
// minutes are dropped.
func SubtractRanges(baseStart, baseEnd string, blockers []TimeRange) []TimeRange {
	free := []TimeRange{{Start: baseStart, End: baseEnd}}
	for _, b := range blockers {
		var next []TimeRange
		for _, r := range free {
			if !Overlaps(r.Start, r.End, b.Start, b.End) {
				next = append(next, r)
				continue
			}
			if TimeToMinutes(b.Start) > TimeToMinutes(r.Start) {
				next = append(next, TimeRange{Start: r.Start, End: b.Start})
			}
			if TimeToMinutes(b.End) < TimeToMinutes(r.End) {
				next = append(next, TimeRange{Start: b.End, End: r.End})
			}
		}
		free = next
	}

	kept := free[:0]
	for _, r := range free {
		if TimeToMinutes(r.End)-TimeToMinutes(r.Start) >= minRangeMin {
			kept = append(kept, r)
		}
	}
	return kept
}
