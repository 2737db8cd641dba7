package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/streemap/pkg/dataset"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorTeal  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleHighlight marks algorithm names and selected tiles.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorTeal)

	// StyleLink renders URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess renders confirmations.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning renders warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorAmber)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorTeal)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// statusMarks prefixes one-line status messages.
var statusMarks = struct{ ok, fail, warn, info string }{
	ok:   lipgloss.NewStyle().Foreground(colorGreen).Render("✓"),
	fail: lipgloss.NewStyle().Foreground(colorRed).Render("✗"),
	warn: lipgloss.NewStyle().Foreground(colorAmber).Render("!"),
	info: lipgloss.NewStyle().Foreground(colorGray).Render("›"),
}

// uiOut receives all human-facing output; tests swap it for a buffer.
var uiOut io.Writer = os.Stdout

func emit(s string) { fmt.Fprintln(uiOut, s) }

// =============================================================================
// Status Lines
// =============================================================================

func printSuccess(format string, args ...any) {
	emit(statusMarks.ok + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	emit(statusMarks.fail + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	emit(statusMarks.warn + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	emit(statusMarks.info + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	emit("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile announces a file that was written.
func printFile(path string) {
	emit("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	emit(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func printNewline() { emit("") }

// =============================================================================
// Treemap Summary
// =============================================================================

// treemapSummary is the one-line description printed after a layout or render.
type treemapSummary struct {
	Algorithm     string
	Width, Height float64
	Tiles         int
	Groups        int
	Levels        int
	Cached        bool
}

// summarize counts the leaf tiles, group frames and nesting levels of l.
func summarize(l *dataset.Layout, cached bool) treemapSummary {
	s := treemapSummary{
		Algorithm: l.Algorithm,
		Width:     l.Width,
		Height:    l.Height,
		Cached:    cached,
	}
	for _, b := range l.Blocks {
		if b.Group {
			s.Groups++
		} else {
			s.Tiles++
		}
	}
	if len(l.Blocks) > 0 {
		s.Levels = l.MaxDepth() + 1
	}
	return s
}

func (s treemapSummary) String() string {
	parts := []string{
		plural(s.Tiles, "tile"),
	}
	if s.Groups > 0 {
		parts = append(parts, plural(s.Groups, "group"))
	}
	if s.Levels > 1 {
		parts = append(parts, plural(s.Levels, "level"))
	}
	if s.Width > 0 && s.Height > 0 {
		parts = append(parts, formatDim(s.Width)+"×"+formatDim(s.Height))
	}
	if s.Algorithm != "" {
		parts = append(parts, s.Algorithm)
	}
	if s.Cached {
		parts = append(parts, "cached")
	} else {
		parts = append(parts, "fresh")
	}
	return strings.Join(parts, " · ")
}

// printStats prints the summary of a computed treemap.
func printStats(s treemapSummary) {
	line := s.String()
	i := strings.LastIndex(line, " · ")
	status := StyleDim.Render(line[i+len(" · "):])
	if s.Cached {
		status = StyleSuccess.Render("cached")
	}
	emit("  " + StyleDim.Render(line[:i+len(" · ")]) + status)
}

// printNextStep suggests the command that renders a saved layout.
func printNextStep(layoutPath string) {
	emit(StyleDim.Render("Render it:") + " " + styleCommand.Render(appName+" visualize "+layoutPath))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
