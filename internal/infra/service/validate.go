// Where: internal/infra/service/validate.go
// What: Schema validation and typed decoding of the sws block.
// Why: Reject malformed configuration before any resource is generated.
package service

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/poruru/sws-schedules/internal/domain/schedule"
)

const schemaURL = "sws.schema.json"

//go:embed schema/sws.schema.json
var schemaSource []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("load sws schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// decodeOptions validates a decoded sws block and converts it to Options.
// The block passes through JSON first so the validator and the decoder see
// the same canonical values; numbers stay json.Number.
func decodeOptions(block map[string]any) (schedule.Options, error) {
	sch, err := loadSchema()
	if err != nil {
		return schedule.Options{}, err
	}
	jsonData, err := json.Marshal(block)
	if err != nil {
		return schedule.Options{}, fmt.Errorf("convert sws block to json: %w", err)
	}

	var document any
	if err := newDecoder(jsonData).Decode(&document); err != nil {
		return schedule.Options{}, fmt.Errorf("decode sws block: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return schedule.Options{}, err
	}

	var opts schedule.Options
	if err := newDecoder(jsonData).Decode(&opts); err != nil {
		return schedule.Options{}, fmt.Errorf("decode sws block: %w", err)
	}
	return opts, nil
}

func newDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}
