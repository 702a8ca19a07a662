// Package ui provides terminal styling for kurocal CLI output.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Simplici0/kurocal/internal/nutrition"
)

func init() {
	if !ShouldUseColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

var (
	ColorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}

	PassStyle    = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle    = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle    = lipgloss.NewStyle().Foreground(ColorFail)
	HeadingStyle = lipgloss.NewStyle().Bold(true)
)

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor respects NO_COLOR, CLICOLOR and CLICOLOR_FORCE.
func ShouldUseColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if _, exists := os.LookupEnv("CLICOLOR_FORCE"); exists {
		return true
	}
	return IsTerminal()
}

// RenderStatus colors text by intake status.
func RenderStatus(status nutrition.IntakeStatus, s string) string {
	switch status {
	case nutrition.IntakeOnTarget:
		return PassStyle.Render(s)
	case nutrition.IntakeOver:
		return WarnStyle.Render(s)
	case nutrition.IntakeUnder:
		return FailStyle.Render(s)
	default:
		return s
	}
}

// RenderReport emphasizes the section headers of a text report.
func RenderReport(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			lines[i] = HeadingStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
