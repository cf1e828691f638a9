package domain

// Workday defaults used when a settings field is empty or has never been
// configured.
const (
	DefaultWorkdayStart  = "09:00"
	DefaultWorkdayEnd    = "17:00"
	DefaultPrimeHours    = "09:00-15:00"
	DefaultDowntimeHours = "19:00-22:00"
)

// PlannerSettings configures the workday window for both planners. The range
// fields hold comma-separated "HH:MM-HH:MM" text, the raw format the range
// parser accepts.
type PlannerSettings struct {
	WorkdayStart  string
	WorkdayEnd    string
	PrimeHours    string
	DowntimeHours string
	MeetingBlocks string
}

// DefaultSettings returns the documented workday defaults.
func DefaultSettings() PlannerSettings {
	return PlannerSettings{
		WorkdayStart:  DefaultWorkdayStart,
		WorkdayEnd:    DefaultWorkdayEnd,
		PrimeHours:    DefaultPrimeHours,
		DowntimeHours: DefaultDowntimeHours,
	}
}

// Normalized returns a copy with empty fields replaced by defaults.
// MeetingBlocks stays empty when unset; no meetings is a valid state.
func (s PlannerSettings) Normalized() PlannerSettings {
	return PlannerSettings{
		WorkdayStart:  CoalesceStr(s.WorkdayStart, DefaultWorkdayStart),
		WorkdayEnd:    CoalesceStr(s.WorkdayEnd, DefaultWorkdayEnd),
		PrimeHours:    CoalesceStr(s.PrimeHours, DefaultPrimeHours),
		DowntimeHours: CoalesceStr(s.DowntimeHours, DefaultDowntimeHours),
		MeetingBlocks: s.MeetingBlocks,
	}
}
