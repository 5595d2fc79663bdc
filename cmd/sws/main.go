// Where: cmd/sws/main.go
// What: CLI entrypoint.
// Why: Execute sws commands with process-level dependencies.
package main

import (
	"os"

	"github.com/poruru/sws-schedules/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
