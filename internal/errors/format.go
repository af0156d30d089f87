package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// sprint renders one styled fragment of the error report.
type sprint func(a ...interface{}) string

// errorStyle holds the stylers for each part of the report. The colored
// variant relies on fatih/color's own terminal detection, so both variants
// share a single render path.
type errorStyle struct {
	label    sprint
	message  sprint
	fix      sprint
	bullet   sprint
	category sprint
}

var coloredStyle = errorStyle{
	label:    color.New(color.FgRed, color.Bold).SprintFunc(),
	message:  color.New(color.FgRed).SprintFunc(),
	fix:      color.New(color.FgGreen, color.Bold).SprintFunc(),
	bullet:   color.New(color.FgGreen).SprintFunc(),
	category: color.New(color.FgYellow).SprintFunc(),
}

var plainStyle = errorStyle{
	label:    fmt.Sprint,
	message:  fmt.Sprint,
	fix:      fmt.Sprint,
	bullet:   fmt.Sprint,
	category: fmt.Sprint,
}

// FormatError renders a CLIError for the terminal, colored when supported.
func FormatError(err *CLIError) string {
	return render(err, coloredStyle)
}

// FormatErrorPlain renders a CLIError without color escapes.
func FormatErrorPlain(err *CLIError) string {
	return render(err, plainStyle)
}

func render(err *CLIError, st errorStyle) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n",
		st.label("Error"), st.category(err.Category.String()), st.message(err.Message))

	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		sb.WriteString(st.fix("To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", st.bullet("•"), step)
		}
	}

	return sb.String()
}

// PrintError prints a formatted CLIError to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// FormatSimpleError renders a plain error under the given category.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}

// PrintSimpleError prints a plain error to stderr under the given category.
func PrintSimpleError(err error, category ErrorCategory) {
	fmt.Fprint(os.Stderr, FormatSimpleError(err, category))
}
