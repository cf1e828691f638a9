package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "8h", FormatMinutes(480))
}

func TestFormatCents(t *testing.T) {
	assert.Contains(t, FormatCents(0), "--")
	assert.Contains(t, FormatCents(500000), "$5,000")
	assert.Contains(t, FormatCents(123456789), "$1,234,567")
	assert.Contains(t, FormatCents(9900), "$99")
	assert.Contains(t, FormatCents(-250000), "-$2,500")
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "89abcdef")
	assert.Contains(t, TruncID("short"), "short")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", RelativeDateFrom(now, now))
	assert.Equal(t, "Tomorrow", RelativeDateFrom(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Yesterday", RelativeDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "In 5d", RelativeDateFrom(now.AddDate(0, 0, 5), now))
	assert.Equal(t, "In 3w", RelativeDateFrom(now.AddDate(0, 0, 21), now))
	assert.Equal(t, "3d ago", RelativeDateFrom(now.AddDate(0, 0, -3), now))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Title"},
		[][]string{
			{"1", "Call lead"},
			{"22", "Ship"},
		},
	)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Call lead")
	assert.Contains(t, out, "─")
	// Rows line up: "1 " is padded to the widest cell in its column.
	assert.Contains(t, out, "1   Call lead")
	assert.Contains(t, out, "22  Ship")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
