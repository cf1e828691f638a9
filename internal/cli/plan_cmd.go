package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and show plans",
	}

	cmd.AddCommand(
		newPlanDayCmd(app),
		newPlanWeekCmd(app),
		newPlanShowCmd(app),
	)

	return cmd
}

func newPlanDayCmd(app *App) *cobra.Command {
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Plan today around the current time",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.DayPlanRequest{}
			if nowFlag != "" {
				clock, err := time.Parse("15:04", nowFlag)
				if err != nil {
					return fmt.Errorf("invalid --now %q, expected HH:MM", nowFlag)
				}
				today := time.Now()
				now := time.Date(today.Year(), today.Month(), today.Day(),
					clock.Hour(), clock.Minute(), 0, 0, today.Location())
				req.Now = &now
			}

			plan, err := app.DayPlan.PlanDay(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderDayPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "Plan as if it were this time today (HH:MM)")

	return cmd
}

func newPlanWeekCmd(app *App) *cobra.Command {
	var anchorFlag string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Rebuild and store the week's calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.WeekPlanRequest{}
			if anchorFlag != "" {
				anchor, err := parseAnchor(anchorFlag)
				if err != nil {
					return err
				}
				req.Anchor = &anchor
			}

			resp, err := app.WeekPlan.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderWeekPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "Any date in the target week (YYYY-MM-DD, default today)")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var anchorFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored week without regenerating",
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor := time.Now()
			if anchorFlag != "" {
				parsed, err := parseAnchor(anchorFlag)
				if err != nil {
					return err
				}
				anchor = parsed
			}

			resp, err := app.WeekPlan.Show(context.Background(), anchor)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderWeekPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "Any date in the target week (YYYY-MM-DD, default today)")

	return cmd
}

func parseAnchor(s string) (time.Time, error) {
	anchor, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --anchor %q, expected YYYY-MM-DD", s)
	}
	return anchor, nil
}
