package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/spf13/cobra"
)

func newBlockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Work with calendar blocks",
	}

	cmd.AddCommand(newBlockToggleCmd(app))

	return cmd
}

func newBlockToggleCmd(app *App) *cobra.Command {
	var anchorFlag string

	cmd := &cobra.Command{
		Use:   "toggle <block>",
		Short: "Toggle a block's completion (syncs the task)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			anchor := time.Now()
			if anchorFlag != "" {
				parsed, err := parseAnchor(anchorFlag)
				if err != nil {
					return err
				}
				anchor = parsed
			}

			id, err := resolveBlockID(ctx, app, args[0], anchor)
			if err != nil {
				return err
			}

			block, err := app.WeekPlan.ToggleBlock(ctx, id)
			if err != nil {
				var planErr *contract.PlanError
				if errors.As(err, &planErr) && planErr.Code == contract.PlanErrBlockLocked {
					return fmt.Errorf("%s is a fixed event and cannot be toggled", args[0])
				}
				return err
			}

			state := "reopened"
			if block.Completed {
				state = "completed"
			}
			fmt.Printf("%s %s %s\n", formatter.Bold(block.Title), state, formatter.Dim(block.Date+" "+block.Start))
			return nil
		},
	}

	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "Any date in the block's week (YYYY-MM-DD, default today)")

	return cmd
}
