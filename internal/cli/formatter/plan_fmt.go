package formatter

import (
	"fmt"
	"strings"

	"github.com/forgeos/forgeplan/internal/contract"
)

// RenderDayPlan renders the daily dashboard: the DO NOW box, the next few
// blocks, the evening queue, and the full timeline.
func RenderDayPlan(plan *contract.DayPlanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Today " + plan.Date))
	b.WriteString("\n\n")

	if plan.DoNow == nil {
		b.WriteString(Dim("  Nothing scheduled. Add tasks and replan."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(RenderBox("Do Now", renderDoNow(*plan.DoNow)))
	b.WriteString("\n")

	if len(plan.NextUp) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Next Up"))
		b.WriteString("\n")
		for _, blk := range plan.NextUp {
			b.WriteString(renderPlanLine(blk))
		}
	}

	if len(plan.Tonight) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Tonight"))
		b.WriteString("\n")
		for _, blk := range plan.Tonight {
			b.WriteString(renderPlanLine(blk))
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	headers := []string{"Time", "Task", "Why"}
	rows := make([][]string, 0, len(plan.Blocks))
	for _, blk := range plan.Blocks {
		rows = append(rows, []string{
			blk.Start + "-" + blk.End,
			blk.Title,
			Dim(blk.Reason),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}

func renderDoNow(blk contract.PlanBlock) string {
	line := fmt.Sprintf("%s  %s", StyleBold.Render(blk.Title), Dim(blk.Start+"-"+blk.End))
	if blk.Reason != "" {
		line += "\n" + Dim(blk.Reason)
	}
	return line
}

func renderPlanLine(blk contract.PlanBlock) string {
	return fmt.Sprintf("  %s  %s\n", Dim(blk.Start+"-"+blk.End), blk.Title)
}
