package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/forgeos/forgeplan/internal/cli/formatter"
	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/spf13/cobra"
)

func newCalCmd(app *App) *cobra.Command {
	var anchorFlag string

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Interactive week calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("cal needs an interactive terminal; use 'forgeplan plan show' instead")
			}

			anchor := time.Now()
			if anchorFlag != "" {
				parsed, err := parseAnchor(anchorFlag)
				if err != nil {
					return err
				}
				anchor = parsed
			}

			model := newCalModel(app, anchor)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "Any date in the target week (YYYY-MM-DD, default today)")

	return cmd
}

type calKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Generate key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func (k calKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Generate, k.PrevWeek, k.NextWeek, k.Refresh, k.Quit}
}

func (k calKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Generate, k.PrevWeek, k.NextWeek},
		{k.Refresh, k.Quit},
	}
}

var calKeys = calKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
	Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "regenerate week")),
	PrevWeek: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
	NextWeek: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type weekLoadedMsg struct {
	week *contract.WeekPlanResponse
	err  error
}

type blockToggledMsg struct {
	err error
}

// calModel is the interactive week view: a cursor over the stored blocks
// with completion toggling and week navigation.
type calModel struct {
	app    *App
	anchor time.Time
	week   *contract.WeekPlanResponse
	cursor int

	loading bool
	status  string
	err     error

	keys calKeyMap
	help help.Model
}

func newCalModel(app *App, anchor time.Time) *calModel {
	return &calModel{
		app:     app,
		anchor:  anchor,
		loading: true,
		keys:    calKeys,
		help:    help.New(),
	}
}

func (m *calModel) Init() tea.Cmd {
	return m.loadWeek()
}

func (m *calModel) loadWeek() tea.Cmd {
	app, anchor := m.app, m.anchor
	return func() tea.Msg {
		week, err := app.WeekPlan.Show(context.Background(), anchor)
		return weekLoadedMsg{week: week, err: err}
	}
}

func (m *calModel) generateWeek() tea.Cmd {
	app, anchor := m.app, m.anchor
	return func() tea.Msg {
		req := contract.WeekPlanRequest{Anchor: &anchor}
		week, err := app.WeekPlan.Generate(context.Background(), req)
		return weekLoadedMsg{week: week, err: err}
	}
}

func (m *calModel) toggleBlock(id string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		_, err := app.WeekPlan.ToggleBlock(context.Background(), id)
		return blockToggledMsg{err: err}
	}
}

func (m *calModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case weekLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.week = msg.week
		if m.cursor >= len(m.week.Blocks) {
			m.cursor = len(m.week.Blocks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case blockToggledMsg:
		if msg.err != nil {
			var planErr *contract.PlanError
			if errors.As(msg.err, &planErr) && planErr.Code == contract.PlanErrBlockLocked {
				m.status = "Fixed events cannot be toggled"
				return m, nil
			}
			m.err = msg.err
			return m, nil
		}
		m.status = ""
		return m, m.loadWeek()

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.week != nil && m.cursor < len(m.week.Blocks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.week != nil && m.cursor < len(m.week.Blocks) {
				return m, m.toggleBlock(m.week.Blocks[m.cursor].ID)
			}
		case key.Matches(msg, m.keys.Generate):
			m.loading = true
			return m, m.generateWeek()
		case key.Matches(msg, m.keys.PrevWeek):
			m.anchor = m.anchor.AddDate(0, 0, -7)
			m.loading = true
			m.cursor = 0
			return m, m.loadWeek()
		case key.Matches(msg, m.keys.NextWeek):
			m.anchor = m.anchor.AddDate(0, 0, 7)
			m.loading = true
			m.cursor = 0
			return m, m.loadWeek()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadWeek()
		}
	}
	return m, nil
}

func (m *calModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("\n  " + formatter.Dim("Loading week..."))
	case m.err != nil:
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()))
	case m.week == nil || len(m.week.Blocks) == 0:
		weekStart := ""
		if m.week != nil {
			weekStart = " of " + m.week.WeekStart
		}
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("Week%s is empty. Press g to generate it.", weekStart)))
	default:
		b.WriteString("\n")
		b.WriteString(formatter.Header("Week of " + m.week.WeekStart))
		b.WriteString("\n")

		currentDate := ""
		for i, blk := range m.week.Blocks {
			if blk.Date != currentDate {
				currentDate = blk.Date
				b.WriteString("\n" + formatter.StyleHeader.Render(weekdayHeading(blk.Date)) + "\n")
			}
			cursor := "  "
			if i == m.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
			}
			b.WriteString(cursor + formatter.RenderWeekBlockLine(blk) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n  " + formatter.StyleYellow.Render(m.status))
	}

	b.WriteString("\n\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func weekdayHeading(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Monday Jan 2")
}
