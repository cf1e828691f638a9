package cli

import (
	"context"
	"fmt"

	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/spf13/cobra"
)

func newReplanCmd(app *App) *cobra.Command {
	var anchorFlag string

	cmd := &cobra.Command{
		Use:   "replan",
		Short: "Rebuild today's plan and the week's calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewReplanRequest(domain.TriggerManual)
			if anchorFlag != "" {
				anchor, err := parseAnchor(anchorFlag)
				if err != nil {
					return err
				}
				req.Anchor = &anchor
			}

			resp, err := app.Replan.Replan(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderDayPlan(resp.Day))
			fmt.Println(formatter.RenderWeekPlan(resp.Week))
			return nil
		},
	}

	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "Any date in the target week (YYYY-MM-DD, default today)")

	return cmd
}
