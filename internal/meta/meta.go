// Where: internal/meta/meta.go
// What: CLI metadata constants.
// Why: Keep names and default paths in one place.
package meta

const (
	// Project Identity
	AppName   = "sws"
	EnvPrefix = "SWS"

	// Directory Layout
	HomeDir = ".sws"

	// Deployment tool layout
	ServerlessDir        = ".serverless"
	DefaultTemplate      = ServerlessDir + "/cloudformation-template-update-stack.json"
	DefaultStage         = "dev"
	DefaultEnvFile       = ".env"
	TemplateHistoryLimit = 5
)
