package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
)

// RenderWeekPlan renders a stored week grouped by day. Blocks arrive sorted
// by (date, start), so one pass with day breaks is enough.
func RenderWeekPlan(resp *contract.WeekPlanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Week of " + resp.WeekStart))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("  %d fixed, %d planned", resp.FixedCount, resp.PlannedCount)))
	b.WriteString("\n")

	if len(resp.Blocks) == 0 {
		b.WriteString("\n")
		b.WriteString(Dim("  Empty week. Run 'forgeplan plan week' to generate one."))
		b.WriteString("\n")
		return b.String()
	}

	currentDate := ""
	for _, blk := range resp.Blocks {
		if blk.Date != currentDate {
			currentDate = blk.Date
			b.WriteString("\n")
			b.WriteString(StyleHeader.Render(weekdayLabel(blk.Date)))
			b.WriteString("\n")
		}
		b.WriteString(RenderWeekBlockLine(blk))
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderWeekBlockLine renders one block row: completion mark, time span,
// title colored by category, and the short id used for toggling.
func RenderWeekBlockLine(blk contract.CalendarBlock) string {
	mark := "○"
	switch {
	case blk.Type == domain.BlockFixed:
		mark = Dim("▪")
	case blk.Completed:
		mark = StyleGreen.Render("✓")
	}

	title := BlockTypeStyle(blk.Type).Render(blk.Title)
	if blk.Completed {
		title = StyleDim.Strikethrough(true).Render(blk.Title)
	}

	return fmt.Sprintf("  %s %s  %s  %s", mark, Dim(blk.Start+"-"+blk.End), title, TruncID(blk.ID))
}

func weekdayLabel(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Monday Jan 2")
}
