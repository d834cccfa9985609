// Package prompt provides the user-facing selection capability.
//
// The wizard never reads the terminal directly; it calls a [Chooser] with a
// title and labeled options and receives the selected index. The production
// implementation is [TerminalChooser] on a huh single-select. Tests and
// non-interactive runs use [StaticChooser] with canned answers.
package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Chooser presents a single-select list of options and blocks until the
// user picks one.
type Chooser interface {
	// Choose returns the index of the selected option. The options slice
	// is never empty. An error means the selection could not be made
	// (for example, the terminal was closed); the caller treats that as
	// a step failure.
	Choose(title string, options []string) (int, error)
}

// TerminalChooser implements [Chooser] with an interactive terminal prompt.
type TerminalChooser struct{}

func (TerminalChooser) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options for prompt %q", title)
	}

	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(label, i)
	}

	var selected int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("prompt %q: %w", title, err)
	}
	return selected, nil
}

// StaticChooser implements [Chooser] with canned answers.
//
// Answers maps a prompt title to the label to select. Prompts without an
// entry fall back to Default, which is the first option unless set — by
// convention the first option of every choice step is the safe skip.
type StaticChooser struct {
	// Answers maps prompt titles to the option label to pick.
	Answers map[string]string

	// Default is the index returned when no answer matches.
	Default int

	// Prompts records every title passed to Choose, in order.
	Prompts []string
}

func (s *StaticChooser) Choose(title string, options []string) (int, error) {
	s.Prompts = append(s.Prompts, title)

	if label, ok := s.Answers[title]; ok {
		for i, opt := range options {
			if opt == label {
				return i, nil
			}
		}
		return 0, fmt.Errorf("prompt %q has no option %q", title, label)
	}
	if s.Default < 0 || s.Default >= len(options) {
		return 0, fmt.Errorf("prompt %q: default index %d out of range", title, s.Default)
	}
	return s.Default, nil
}
