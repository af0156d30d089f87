// Package output provides terminal output formatting utilities for the
// pystack CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintStepHeader prints a colored step header (e.g. "[2/6] Installing dependencies...").
// Uses cyan for the step indicator and white for the step name.
func PrintStepHeader(out io.Writer, stepNum, totalSteps int, stepName string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan(fmt.Sprintf("[%d/%d]", stepNum, totalSteps)), white(stepName+"..."))
}

// PrintSuccess prints a green checkmark line for a completed step.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintSkipped prints a dim line for a step that had nothing to do.
func PrintSkipped(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", dim("-"), dim(message))
}

// PrintNotice prints a yellow warning-style notice (e.g. backup created).
func PrintNotice(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("!"), message)
}

// PrintHint prints dim follow-up guidance after a successful run.
func PrintHint(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "  %s\n", dim(message))
}
