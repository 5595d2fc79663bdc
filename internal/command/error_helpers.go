// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure output and exit codes consistent across commands.
package command

import (
	"fmt"
	"io"
)

// exitWithError prints an error message and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	consoleUI(out, false).Info(fmt.Sprintf("✗ %v", err))
	return 1
}

// exitWithSuggestion prints a message followed by next steps and returns
// exit code 1.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	fmt.Fprintf(out, "✗ %s\n", message)
	if len(suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		for _, s := range suggestions {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	return 1
}
