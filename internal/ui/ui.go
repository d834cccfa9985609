// Package ui renders the wizard's terminal presentation with lipgloss.
//
// Everything here is cosmetic: the banner, step headers, the progress bar,
// success/failure marks and the occasional encouragement line. The runner
// talks to this package only through [ConsoleReporter], which implements
// runner.Reporter.
package ui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	quoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("179")).Italic(true)
)

// encouragements are printed between steps to keep long installs bearable.
var encouragements = []string{
	"Nice. On to the next one.",
	"Smooth so far.",
	"Looking good.",
	"Almost there, keep going.",
	"One step closer to a running app.",
}

// Banner prints the application banner.
func Banner(w io.Writer, appName string) {
	fmt.Fprintln(w, bannerStyle.Render(appName))
}

// Tagline prints the introduction line under the banner. When typed is true
// the text is written character by character, the wizard's little flourish.
func Tagline(w io.Writer, text string, typed bool) {
	if typed {
		Typewriter(w, taglineStyle.Render(text), 15*time.Millisecond)
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintln(w, taglineStyle.Render(text))
}

// Typewriter writes s one rune at a time with the given delay between runes.
// A zero delay writes everything immediately.
func Typewriter(w io.Writer, s string, delay time.Duration) {
	for _, r := range s {
		fmt.Fprintf(w, "%c", r)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}

// ProgressBar renders a fixed-width bar like "[██████░░░░] 3/7".
func ProgressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", barStyle.Render(bar), done, total)
}

// ConsoleReporter implements runner.Reporter, printing step progress to a
// writer. Create instances with [NewConsoleReporter].
type ConsoleReporter struct {
	// Out receives all output.
	Out io.Writer

	// Quotes enables random encouragement lines after completed steps.
	Quotes bool

	// BarWidth is the progress bar width in cells.
	BarWidth int
}

// NewConsoleReporter creates a [ConsoleReporter] writing to out, with
// encouragements enabled and the default bar width.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out, Quotes: true, BarWidth: 24}
}

func (r *ConsoleReporter) StepStart(index, total int, title string) {
	fmt.Fprintf(r.Out, "\n%s\n", headerStyle.Render(fmt.Sprintf("[%d/%d] %s", index, total, title)))
}

func (r *ConsoleReporter) StepDone(index, total int, title string) {
	fmt.Fprintf(r.Out, "%s %s\n", successStyle.Render("✓"), title)
	r.progress(index, total)
	if r.Quotes && index < total {
		fmt.Fprintln(r.Out, quoteStyle.Render(Encouragement()))
	}
}

func (r *ConsoleReporter) StepSkipped(index, total int, title string) {
	fmt.Fprintf(r.Out, "%s %s (skipped)\n", skipStyle.Render("○"), title)
	r.progress(index, total)
}

func (r *ConsoleReporter) StepFailed(index, total int, title string, err error) {
	fmt.Fprintf(r.Out, "%s %s: %v\n", failStyle.Render("✗"), title, err)
}

func (r *ConsoleReporter) progress(done, total int) {
	fmt.Fprintln(r.Out, ProgressBar(done, total, r.BarWidth))
}

// Encouragement returns a random encouragement line.
func Encouragement() string {
	return encouragements[rand.IntN(len(encouragements))]
}

// Success prints the final all-steps-completed message.
func Success(w io.Writer, text string) {
	fmt.Fprintf(w, "\n%s %s\n", successStyle.Render("✓"), successStyle.Render(text))
}

// Abort prints a fatal pre-flight message.
func Abort(w io.Writer, text string) {
	fmt.Fprintf(w, "%s %s\n", failStyle.Render("✗"), text)
}
