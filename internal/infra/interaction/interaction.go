// Where: internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/poruru/sws-schedules/internal/constants"
	"github.com/poruru/sws-schedules/internal/infra/envutil"
)

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
	SelectValue(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether prompts may be shown. SWS_INTERACTIVE
// overrides terminal detection when set to a boolean.
func Interactive(in *os.File) bool {
	if forced, ok := envutil.Bool(constants.EnvInteractive); ok {
		return forced
	}
	return IsTerminal(in)
}

// EmojiEnabled reports whether console output may use emoji: only on a
// terminal and unless SWS_NO_EMOJI is true.
func EmojiEnabled(out *os.File) bool {
	if disabled, ok := envutil.Bool(constants.EnvNoEmoji); ok && disabled {
		return false
	}
	return IsTerminal(out)
}
