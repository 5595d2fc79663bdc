// Where: internal/domain/schedule/envelope.go
// What: Dispatch envelope delivered to the worker at trigger time.
// Why: Keep the wire format in one place for both target shapes.
package schedule

import (
	"fmt"

	"github.com/poruru/sws-schedules/internal/domain/value"
)

const (
	IntegrationQueue    = "scheduled"
	IntegrationFunction = "eb_lambda_scheduled"

	EnvelopeVersion = "v3"
	EnvelopeWorker  = "lambda"
)

// Envelope is the JSON object placed in an event target's Input.
type Envelope struct {
	Integration string `json:"__integration"`
	Version     string `json:"__sws_version"`
	Worker      string `json:"__sws_worker"`
	Payload
}

// NewEnvelope wraps a payload with the fixed metadata fields.
func NewEnvelope(integration string, payload Payload) Envelope {
	return Envelope{
		Integration: integration,
		Version:     EnvelopeVersion,
		Worker:      EnvelopeWorker,
		Payload:     payload,
	}
}

// Encode returns the compact JSON form of the envelope.
func (e Envelope) Encode() (string, error) {
	data, err := value.CompactJSON(e)
	if err != nil {
		return "", fmt.Errorf("encode dispatch envelope: %w", err)
	}
	return string(data), nil
}
