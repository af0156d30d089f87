package cli

// Exit codes for the pystack CLI. Every fatal condition maps to ExitFailure;
// the tool has no partial-failure modes.
const (
	// ExitSuccess indicates the full sequence completed.
	ExitSuccess = 0

	// ExitFailure indicates a fatal condition (missing tool, failed
	// command, or failed write).
	ExitFailure = 1
)
