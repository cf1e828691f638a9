package scheduler

import (
	"regexp"
	"strings"
	"time"

	"github.com/forgeos/forgeplan/internal/domain"
)

// fixedEventRe matches one template line: "<Weekday> HH:MM-HH:MM <Title>"
// with a 3-letter English weekday, case-insensitive.
var fixedEventRe = regexp.MustCompile(`(?i)^(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\s+(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})\s+(.+)$`)

var weekdayByToken = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// ParseFixedEventLine parses one fixed-event template line. Times like
// "9:00" are zero-padded to "09:00".
func ParseFixedEventLine(line string) (domain.FixedEvent, bool) {
	m := fixedEventRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.FixedEvent{}, false
	}
	return domain.FixedEvent{
		Weekday: weekdayByToken[strings.ToLower(m[1])],
		Start:   padTime(m[2]),
		End:     padTime(m[3]),
		Title:   strings.TrimSpace(m[4]),
	}, true
}

// ParseFixedEvents parses a newline-separated list of template lines,
// silently skipping lines that do not match.
func ParseFixedEvents(text string) []domain.FixedEvent {
	var events []domain.FixedEvent
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if ev, ok := ParseFixedEventLine(line); ok {
			events = append(events, ev)
		}
	}
	return events
}

func padTime(t string) string {
	if len(t) == 4 { // "9:00"
		return "0" + t
	}
	return t
}
