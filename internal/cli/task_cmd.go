package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskStatusCmd(app),
		newTaskRmCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		taskType string
		estimate int
		urgency  int
		impact   int
		priority string
		dealRef  string
		dueDate  string
		desc     string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task := &domain.Task{
				Description: desc,
				EstimateMin: estimate,
				Urgency:     urgency,
				Impact:      impact,
			}
			if len(args) > 0 {
				task.Title = args[0]
			}
			if priority != "" {
				task.Priority = domain.ParsePriority(priority)
			}
			if taskType != "" {
				task.Type = domain.ParseTaskType(taskType)
			}

			// No title and a terminal attached: collect fields with a form.
			if task.Title == "" {
				if !app.interactive() {
					return fmt.Errorf("title is required (or run interactively)")
				}
				if err := runTaskForm(task); err != nil {
					return err
				}
			}

			if dueDate != "" {
				due, err := time.Parse("2006-01-02", dueDate)
				if err != nil {
					return fmt.Errorf("invalid --due %q, expected YYYY-MM-DD", dueDate)
				}
				task.DueDate = &due
			}

			if dealRef != "" {
				dealID, err := resolveDealID(ctx, app, dealRef)
				if err != nil {
					return err
				}
				task.DealID = dealID
			}

			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}

			fmt.Printf("Added task %s %s\n", formatter.TruncID(task.ID), formatter.Bold(task.Title))

			if task.RevenueRelevant() {
				return replanAfterTaskChange(ctx, app)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&taskType, "type", "", "Task type (revenue|delivery|system)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimate in minutes (default 30)")
	cmd.Flags().IntVar(&urgency, "urgency", 0, "Urgency 1-5")
	cmd.Flags().IntVar(&impact, "impact", 0, "Impact 1-5")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high), used when urgency is unset")
	cmd.Flags().StringVar(&dealRef, "deal", "", "Deal this task belongs to (id, prefix, or name)")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")

	return cmd
}

func runTaskForm(task *domain.Task) error {
	in := taskFormInput{Type: string(domain.TypeDelivery)}
	if err := taskForm(&in).Run(); err != nil {
		return err
	}

	task.Title = strings.TrimSpace(in.Title)
	task.Type = domain.ParseTaskType(in.Type)
	if v := strings.TrimSpace(in.Estimate); v != "" {
		task.EstimateMin, _ = strconv.Atoi(v)
	}
	if v := strings.TrimSpace(in.Urgency); v != "" {
		task.Urgency, _ = strconv.Atoi(v)
	}
	if v := strings.TrimSpace(in.Impact); v != "" {
		task.Impact, _ = strconv.Atoi(v)
	}
	if v := strings.TrimSpace(in.DueDate); v != "" {
		due, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", v, err)
		}
		task.DueDate = &due
	}
	return nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tasks, err := app.Tasks.List(ctx, all)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("No tasks. Add one with 'forgeplan task add'."))
				return nil
			}

			now := time.Now()
			headers := []string{"ID", "Task", "Type", "Status", "Est", "Due"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				due := formatter.Dim("--")
				if t.DueDate != nil {
					due = formatter.DueDateStyled(*t.DueDate, now)
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Title,
					formatter.TypeBadge(t.Type),
					formatter.StatusPill(t.Status),
					formatter.FormatMinutes(t.EffectiveEstimate()),
					due,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := app.Tasks.Complete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Completed %s\n", formatter.Bold(task.Title))

			if task.RevenueRelevant() {
				return replanAfterTaskChange(ctx, app)
			}
			return nil
		},
	}
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task> <status>",
		Short: "Set a task's status (not_started|in_progress|completed|blocked)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			status := domain.ParseTaskStatus(args[1])
			if err := app.Tasks.SetStatus(ctx, id, status); err != nil {
				return err
			}

			fmt.Printf("%s is now %s\n", formatter.Bold(task.Title), formatter.StatusPill(status))

			if task.RevenueRelevant() {
				return replanAfterTaskChange(ctx, app)
			}
			return nil
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted %s\n", formatter.Bold(task.Title))

			if task.RevenueRelevant() {
				return replanAfterTaskChange(ctx, app)
			}
			return nil
		},
	}
}

// replanAfterTaskChange rebuilds both plans after a mutation to
// revenue-relevant work, the interrupt path of the planner.
func replanAfterTaskChange(ctx context.Context, app *App) error {
	fmt.Println(formatter.Dim("Revenue work changed; replanning..."))

	resp, err := app.Replan.Replan(ctx, contract.NewReplanRequest(domain.TriggerTaskChanged))
	if err != nil {
		return fmt.Errorf("replanning: %w", err)
	}

	fmt.Printf("Replanned: %d blocks today, %d this week\n",
		len(resp.Day.Blocks), len(resp.Week.Blocks))
	return nil
}
