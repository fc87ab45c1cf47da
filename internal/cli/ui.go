package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

// Terminal colours picked to sit next to the sticky-note swatches.
var (
	colorRose   = lipgloss.Color("211") // titles, spinner
	colorLeaf   = lipgloss.Color("114") // success, cache hits
	colorAmber  = lipgloss.Color("221") // warnings
	colorCherry = lipgloss.Color("167") // errors
	colorSky    = lipgloss.Color("117") // links, commands
	colorPaper  = lipgloss.Color("230") // values
	colorPencil = lipgloss.Color("245") // labels
	colorFaded  = lipgloss.Color("240") // muted text
)

var (
	// StyleTitle renders headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorRose)

	// StyleLink renders URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorSky).Underline(true)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaded)

	styleValue   = lipgloss.NewStyle().Foreground(colorPaper)
	styleLabel   = lipgloss.NewStyle().Foreground(colorPencil).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorSky)
	styleColumns = lipgloss.NewStyle().Bold(true).Foreground(colorRose)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorLeaf)
	styleIconError   = lipgloss.NewStyle().Foreground(colorCherry)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorPencil)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorRose)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconFile    = "→"
)

// =============================================================================
// Status lines
// =============================================================================

func printStatus(icon string, style lipgloss.Style, msg string) {
	fmt.Println(style.Render(icon) + " " + msg)
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, styleIconSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(iconError, styleIconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(iconWarning, styleIconWarning, styleIconWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, styleIconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconFile) + " " + styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + styleValue.Render(value))
}

// =============================================================================
// Wall summary
// =============================================================================

// printStats prints "N notes · C columns · cached|fresh".
func printStats(notes, columns int, cached bool) {
	fmt.Println("  " + wallSummary(notes, columns, cached))
}

func wallSummary(notes, columns int, cached bool) string {
	origin := styleIconInfo.Render("fresh")
	if cached {
		origin = styleIconSuccess.Render("cached")
	}
	sep := StyleDim.Render(" · ")
	return strings.Join([]string{
		StyleDim.Render(plural(notes, "note")),
		styleColumns.Render(plural(columns, "column")),
		origin,
	}, sep)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// printNextStep suggests the command to run next.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
