package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/dircount/internal/dircount"
)

//nolint:gochecknoglobals // Styles are constant
var (
	reportStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// FormatDuration renders d with two fractional digits in the largest unit
// (s, ms, µs or ns) in which it is at least one.
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.2fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%.2fns", float64(d))
	}
}

// PrintReport outputs the four summary lines, preceded by a blank line.
// With color set, each line is rendered in cyan.
func PrintReport(stats *dircount.Stats, writer io.Writer, color bool) error {
	lines := []string{
		"Total size: " + humanize.IBytes(stats.Bytes),
		fmt.Sprintf("File count: %d", stats.Files),
		fmt.Sprintf("Directory count: %d", stats.Dirs),
		"Execution time: " + FormatDuration(stats.Elapsed),
	}

	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	for _, line := range lines {
		if color {
			line = reportStyle.Render(line)
		}

		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	return nil
}

// printError outputs a user-facing message, in red when color is set.
func printError(writer io.Writer, msg string, color bool) {
	if color {
		msg = errorStyle.Render(msg)
	}

	fmt.Fprintln(writer, msg)
}
