package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner behind the terminal capability check so
// callers can start/stop unconditionally. On non-TTY output the spinner is a
// no-op and command output stays clean for pipes and CI logs.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner returns a spinner for the given capabilities, suffixed with
// message. Returns a no-op spinner when the terminal is not interactive.
func NewSpinner(caps TerminalCapabilities, message string) *Spinner {
	if !caps.IsTTY {
		return &Spinner{}
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond)
	s.Suffix = " " + message
	return &Spinner{s: s}
}

// Start begins the animation. No-op for non-interactive terminals.
func (sp *Spinner) Start() {
	if sp.s != nil {
		sp.s.Start()
	}
}

// Stop halts the animation and clears the line.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}
