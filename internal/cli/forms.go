package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/domain"
)

func forgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskFormInput collects the fields of the interactive "task add" form as
// raw strings; parsing happens after the form is accepted.
type taskFormInput struct {
	Title    string
	Type     string
	Estimate string
	Urgency  string
	Impact   string
	DueDate  string
}

// taskForm builds the interactive add-task form. Estimate, urgency, impact
// and due date are optional; defaults apply when left blank.
func taskForm(in *taskFormInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Call the Hendricks lead").
				Value(&in.Title).
				Validate(validateRequired("title")),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Delivery", string(domain.TypeDelivery)),
					huh.NewOption("Revenue", string(domain.TypeRevenue)),
					huh.NewOption("System", string(domain.TypeSystem)),
				).
				Value(&in.Type),
			huh.NewInput().
				Title("Estimate minutes (blank = 30)").
				Placeholder("30").
				Value(&in.Estimate).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Urgency 1-5 (blank = default)").
				Placeholder("3").
				Value(&in.Urgency).
				Validate(validateOptionalScale),
			huh.NewInput().
				Title("Impact 1-5 (blank = default)").
				Placeholder("3").
				Value(&in.Impact).
				Validate(validateOptionalScale),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-09-15").
				Value(&in.DueDate).
				Validate(validateOptionalDate),
		),
	).WithTheme(forgeHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

func validateOptionalScale(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return fmt.Errorf("expected 1-5")
	}
	return nil
}
