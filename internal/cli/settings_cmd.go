package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/scheduler"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change planner settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show planner settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Planner Settings"))
			fmt.Printf("  Workday:   %s-%s\n", settings.WorkdayStart, settings.WorkdayEnd)
			fmt.Printf("  Prime:     %s\n", settings.PrimeHours)
			fmt.Printf("  Downtime:  %s\n", settings.DowntimeHours)
			if settings.MeetingBlocks != "" {
				fmt.Printf("  Meetings:  %s\n", settings.MeetingBlocks)
			} else {
				fmt.Printf("  Meetings:  %s\n", formatter.Dim("none"))
			}
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		workdayStart string
		workdayEnd   string
		prime        string
		downtime     string
		meetings     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change planner settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			changed := 0
			var flagErr error
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if flagErr != nil {
					return
				}
				switch f.Name {
				case "workday-start":
					flagErr = validateClock(workdayStart)
					settings.WorkdayStart = workdayStart
				case "workday-end":
					flagErr = validateClock(workdayEnd)
					settings.WorkdayEnd = workdayEnd
				case "prime":
					flagErr = validateRangeList(prime)
					settings.PrimeHours = prime
				case "downtime":
					flagErr = validateRangeList(downtime)
					settings.DowntimeHours = downtime
				case "meetings":
					if meetings != "" {
						flagErr = validateRangeList(meetings)
					}
					settings.MeetingBlocks = meetings
				default:
					return
				}
				changed++
			})
			if flagErr != nil {
				return flagErr
			}
			if changed == 0 {
				return fmt.Errorf("nothing to change; pass at least one flag")
			}

			if err := app.Settings.Update(ctx, settings); err != nil {
				return err
			}

			fmt.Println("Settings updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&workdayStart, "workday-start", "", "Workday start (HH:MM)")
	cmd.Flags().StringVar(&workdayEnd, "workday-end", "", "Workday end (HH:MM)")
	cmd.Flags().StringVar(&prime, "prime", "", "Prime hours, comma-separated HH:MM-HH:MM ranges")
	cmd.Flags().StringVar(&downtime, "downtime", "", "Downtime hours, comma-separated HH:MM-HH:MM ranges")
	cmd.Flags().StringVar(&meetings, "meetings", "", "Standing meeting ranges (empty clears)")

	return cmd
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return nil
}

func validateRangeList(s string) error {
	ranges := scheduler.ParseRangeList(s)
	if len(ranges) == 0 {
		return fmt.Errorf("invalid range list %q, expected HH:MM-HH:MM[,HH:MM-HH:MM...]", s)
	}
	for _, r := range ranges {
		if err := validateClock(r.Start); err != nil {
			return err
		}
		if err := validateClock(r.End); err != nil {
			return err
		}
		if scheduler.TimeToMinutes(r.End) <= scheduler.TimeToMinutes(r.Start) {
			return fmt.Errorf("range %s-%s is empty or inverted", r.Start, r.End)
		}
	}
	return nil
}
