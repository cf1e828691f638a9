package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage recurring weekly events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventRmCmd(app),
		newEventImportCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   `add "<Mon..Sun> HH:MM-HH:MM <title>"`,
		Short: "Add a recurring event from a template line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := app.Events.Add(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Added %s %s %s-%s %s\n",
				formatter.TruncID(event.ID),
				event.Weekday.String()[:3],
				event.Start, event.End,
				formatter.Bold(event.Title))
			return nil
		},
	}
}

func newEventListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(context.Background())
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println(formatter.Dim("No recurring events."))
				return nil
			}

			headers := []string{"ID", "Day", "Time", "Event"}
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					e.Weekday.String()[:3],
					e.Start + "-" + e.End,
					e.Title,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newEventRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a recurring event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Deleted event")
			return nil
		},
	}
}

func newEventImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all recurring events from a template file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text []byte
				err  error
			)
			if args[0] == "-" {
				text, err = io.ReadAll(cmd.InOrStdin())
			} else {
				text, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading template: %w", err)
			}

			count, err := app.Events.ImportTemplate(context.Background(), string(text))
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d event(s)\n", count)
			return nil
		},
	}
}

// resolveEventID matches a full id or a unique prefix against the stored
// recurring events.
func resolveEventID(ctx context.Context, app *App, input string) (string, error) {
	events, err := app.Events.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing events: %w", err)
	}

	var matches []string
	for _, e := range events {
		if e.ID == input {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no event matches %q", input)
	default:
		return "", fmt.Errorf("event id %q is ambiguous (%d matches); use more characters", input, len(matches))
	}
}
