// Package ui is the interactive prompt layer. It wraps survey so the rest
// of the tool deals in answers, not terminal handling, and so tests can
// drive the prompts through a virtual terminal.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// UI asks questions over a terminal.
type UI struct {
	stdio terminal.Stdio
}

// New returns a UI bound to the process terminal.
func New() *UI {
	return &UI{stdio: terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}}
}

// NewWithStdio returns a UI bound to the given streams. Tests pair this
// with a pty-backed virtual terminal.
func NewWithStdio(stdio terminal.Stdio) *UI {
	return &UI{stdio: stdio}
}

func (u *UI) askOpts() []survey.AskOpt {
	return []survey.AskOpt{survey.WithStdio(u.stdio.In, u.stdio.Out, u.stdio.Err)}
}

// Text asks a free-text question with an optional default.
func (u *UI) Text(message, def string) (string, error) {
	answer := ""
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &answer, u.askOpts()...); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// SelectOne asks the user to pick exactly one option. Survey re-prompts
// until the choice is valid, so the only error is an interrupt.
func (u *UI) SelectOne(message string, options []string) (string, error) {
	answer := ""
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &answer, u.askOpts()...); err != nil {
		return "", err
	}
	return answer, nil
}

// SelectMany asks the user to pick any subset of options, possibly empty.
func (u *UI) SelectMany(message string, options []string) ([]string, error) {
	answer := []string{}
	prompt := &survey.MultiSelect{Message: message, Options: options}
	if err := survey.AskOne(prompt, &answer, u.askOpts()...); err != nil {
		return nil, err
	}
	return answer, nil
}

// Confirm asks a yes/no question, defaulting to no.
func (u *UI) Confirm(message string) (bool, error) {
	answer := false
	prompt := &survey.Confirm{Message: message, Default: false}
	if err := survey.AskOne(prompt, &answer, u.askOpts()...); err != nil {
		return false, err
	}
	return answer, nil
}

// Header prints a boxed section title.
func (u *UI) Header(title string) {
	bar := strings.Repeat("=", len(title)+4)
	fmt.Fprintf(u.stdio.Out, "\n%s\n  %s\n%s\n\n", bar, title, bar)
}

// Printf writes plain output to the terminal.
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.stdio.Out, format, args...)
}

// Out returns the terminal output stream, for diagnostics of other layers.
func (u *UI) Out() io.Writer {
	return u.stdio.Out
}

// IsInterrupt reports whether err is the user interrupting a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
