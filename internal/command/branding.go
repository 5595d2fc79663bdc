// Where: internal/command/branding.go
// What: CLI naming helpers.
// Why: Keep user-facing command names consistent when the binary is wrapped.
package command

import (
	"os"
	"strings"

	"github.com/poruru/sws-schedules/internal/meta"
)

func cliName() string {
	if name := strings.TrimSpace(os.Getenv("CLI_CMD")); name != "" {
		return name
	}
	return meta.AppName
}
