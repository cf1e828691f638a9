package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/forgeos/forgeplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BlockTypeStyle returns the style for a calendar block category: revenue
// work is green, delivery blue, system purple, fixed events dim.
func BlockTypeStyle(t domain.BlockType) lipgloss.Style {
	switch t {
	case domain.BlockRevenue:
		return StyleGreen
	case domain.BlockDelivery:
		return StyleBlue
	case domain.BlockSystem:
		return StylePurple
	default:
		return StyleDim
	}
}

// BlockTypeBadge returns a colored block-category label such as "● REVENUE".
func BlockTypeBadge(t domain.BlockType) string {
	switch t {
	case domain.BlockRevenue:
		return StyleGreen.Render("● REVENUE")
	case domain.BlockDelivery:
		return StyleBlue.Render("● DELIVERY")
	case domain.BlockSystem:
		return StylePurple.Render("● SYSTEM")
	case domain.BlockFixed:
		return StyleDim.Render("▪ FIXED")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(t)))
	}
}

// StatusPill returns a colored status indicator for task status.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.StatusNotStarted:
		return StyleBlue.Render("○ Not Started")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusBlocked:
		return StyleRed.Render("⊘ Blocked")
	default:
		return StyleDim.Render(string(status))
	}
}

// TypeBadge returns a colored task-type label.
func TypeBadge(t domain.TaskType) string {
	switch t {
	case domain.TypeRevenue:
		return StyleGreen.Render("Revenue")
	case domain.TypeSystem:
		return StylePurple.Render("System")
	case domain.TypeDelivery:
		return StyleBlue.Render("Delivery")
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
