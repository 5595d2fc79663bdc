// Where: cmd/sws/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/sws-schedules/internal/command"
	"github.com/poruru/sws-schedules/internal/infra/interaction"
)

var getwd = os.Getwd

// buildDependencies wires terminal detection and prompts for the process.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		Prompter:    interaction.HuhPrompter{},
		Interactive: interaction.Interactive(os.Stdin),
		Emoji:       interaction.EmojiEnabled(os.Stdout),
		Getwd:       getwd,
	}
}
