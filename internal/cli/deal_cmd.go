package cli

import (
	"context"
	"fmt"

	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/spf13/cobra"
)

func newDealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Manage deals",
	}

	cmd.AddCommand(
		newDealAddCmd(app),
		newDealListCmd(app),
		newDealRmCmd(app),
	)

	return cmd
}

func newDealAddCmd(app *App) *cobra.Command {
	var (
		company    string
		valueCents int64
		stage      string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a deal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deal := &domain.Deal{
				Name:       args[0],
				Company:    company,
				ValueCents: valueCents,
				Stage:      stage,
			}
			if err := app.Deals.Create(context.Background(), deal); err != nil {
				return err
			}

			fmt.Printf("Added deal %s %s\n", formatter.TruncID(deal.ID), formatter.Bold(deal.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().Int64Var(&valueCents, "value", 0, "Deal value in cents")
	cmd.Flags().StringVar(&stage, "stage", "", "Pipeline stage (default open)")

	return cmd
}

func newDealListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List deals by value",
		RunE: func(cmd *cobra.Command, args []string) error {
			deals, err := app.Deals.List(context.Background())
			if err != nil {
				return err
			}

			if len(deals) == 0 {
				fmt.Println(formatter.Dim("No deals. Add one with 'forgeplan deal add'."))
				return nil
			}

			headers := []string{"ID", "Deal", "Company", "Value", "Stage"}
			rows := make([][]string, 0, len(deals))
			for _, d := range deals {
				company := d.Company
				if company == "" {
					company = formatter.Dim("--")
				}
				rows = append(rows, []string{
					formatter.TruncID(d.ID),
					d.Name,
					company,
					formatter.FormatCents(d.ValueCents),
					d.Stage,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newDealRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <deal>",
		Short: "Delete a deal (its tasks are kept, unlinked)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deal, err := app.Deals.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := app.Deals.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted %s\n", formatter.Bold(deal.Name))
			return nil
		},
	}
}
