package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Taskmaster theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconParty   = "🎉"
	IconCheck   = "✅"
	IconUncheck = "⬜"
	IconTrophy  = "🏆"
	IconMedal   = "🥇"
	IconSparkle = "✨"
	IconUser    = "👤"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconQuote   = "💬"
	IconRing    = "⭕"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeAllDone = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("ALL DONE")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Checkbox renders a task's completion marker.
func Checkbox(done bool) string {
	if done {
		return IconCheck
	}
	return IconUncheck
}

// Ring renders a coarse completion ring from a 0–100 percentage.
func Ring(percentage int) string {
	const segments = 10
	filled := percentage / segments
	if filled > segments {
		filled = segments
	}
	bar := strings.Repeat("●", filled) + strings.Repeat("○", segments-filled)
	style := Warn
	switch {
	case percentage >= 100:
		style = Gold
	case percentage >= 50:
		style = Good
	}
	return style.Render(bar) + " " + Muted.Render(fmt.Sprintf("%d%%", percentage))
}

// Rank renders a leaderboard position, with a medal for the podium.
func Rank(pos int) string {
	switch pos {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return Muted.Render(fmt.Sprintf("%2d.", pos))
	}
}
