package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRangeList_Basic(t *testing.T) {
	ranges := ParseRangeList("09:00-12:00, 13:00-17:00")
	assert.Equal(t, []TimeRange{
		{Start: "09:00", End: "12:00"},
		{Start: "13:00", End: "17:00"},
	}, ranges)
}

func TestParseRangeList_EmptyAndWhitespace(t *testing.T) {
	assert.Nil(t, ParseRangeList(""))
	assert.Nil(t, ParseRangeList("   "))
	assert.Len(t, ParseRangeList("09:00-10:00, ,"), 1)
}

func TestParseRangeList_MalformedTokenPassesThrough(t *testing.T) {
	// Garbage is not rejected; comparisons later treat it as midnight.
	ranges := ParseRangeList("garbage")
	assert.Len(t, ranges, 1)
	assert.Equal(t, 0, TimeToMinutes(ranges[0].Start))
}

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 570, TimeToMinutes("09:30"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
	assert.Equal(t, 540, TimeToMinutes("9:00"))
	assert.Equal(t, 0, TimeToMinutes(""))
	assert.Equal(t, 0, TimeToMinutes("nonsense"))
}

func TestMinutesToTime_ZeroPadded(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestInAnyRange_HalfOpen(t *testing.T) {
	ranges := []TimeRange{{Start: "09:00", End: "12:00"}}
	assert.True(t, InAnyRange("09:00", ranges), "start is inclusive")
	assert.True(t, InAnyRange("11:59", ranges))
	assert.False(t, InAnyRange("12:00", ranges), "end is exclusive")
	assert.False(t, InAnyRange("08:59", ranges))
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps("09:00", "12:00", "11:00", "13:00"))
	assert.False(t, Overlaps("09:00", "12:00", "12:00", "13:00"), "touching ranges do not overlap")
	assert.True(t, Overlaps("09:00", "17:00", "10:00", "11:00"), "containment overlaps")
}

func TestSubtractRanges_SplitsAroundBlocker(t *testing.T) {
	free := SubtractRanges("09:00", "17:00", []TimeRange{{Start: "12:00", End: "13:00"}})
	assert.Equal(t, []TimeRange{
		{Start: "09:00", End: "12:00"},
		{Start: "13:00", End: "17:00"},
	}, free)
}

func TestSubtractRanges_DropsShortRemainders(t *testing.T) {
	// 09:00-09:10 remainder is under 15 minutes and must vanish.
	free := SubtractRanges("09:00", "12:00", []TimeRange{{Start: "09:10", End: "11:00"}})
	assert.Equal(t, []TimeRange{{Start: "11:00", End: "12:00"}}, free)
}

func TestSubtractRanges_OrderIndependent(t *testing.T) {
	a := []TimeRange{{Start: "10:00", End: "11:00"}, {Start: "14:00", End: "15:00"}}
	b := []TimeRange{{Start: "14:00", End: "15:00"}, {Start: "10:00", End: "11:00"}}
	assert.Equal(t,
		SubtractRanges("09:00", "17:00", a),
		SubtractRanges("09:00", "17:00", b))
}

func TestSubtractRanges_NoBlockersKeepsBase(t *testing.T) {
	free := SubtractRanges("09:00", "17:00", nil)
	assert.Equal(t, []TimeRange{{Start: "09:00", End: "17:00"}}, free)
}
