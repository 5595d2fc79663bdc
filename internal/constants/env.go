// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

import "github.com/poruru/sws-schedules/internal/meta"

const (
	// Generation
	EnvStage          = meta.EnvPrefix + "_STAGE"
	EnvPrefixTemplate = meta.EnvPrefix + "_PREFIX_TEMPLATE"
	EnvTemplate       = meta.EnvPrefix + "_TEMPLATE"

	// Logging
	EnvLogLevel       = meta.EnvPrefix + "_LOG_LEVEL"
	EnvLogLevelCommon = "LOG_LEVEL"

	// Interaction
	EnvInteractive = meta.EnvPrefix + "_INTERACTIVE"
	EnvNoEmoji     = meta.EnvPrefix + "_NO_EMOJI"
)
