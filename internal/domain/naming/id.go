// Where: internal/domain/naming/id.go
// What: Deterministic identifiers for generated schedule resources.
// Why: Repeated generation must reproduce the same names and reference keys.
package naming

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/poruru/sws-schedules/internal/domain/schedule"
	"github.com/poruru/sws-schedules/internal/domain/value"
)

// identity is the hashed body of a rule: the expression followed by the
// dispatch payload fields, in this key order.
type identity struct {
	Expression string `json:"expression"`
	schedule.Payload
}

// PayloadID hashes the schedule expression together with the dispatch
// payload. Rules that differ in any of expression, task path, args or
// kwargs get different ids; identical rules get the same id.
func PayloadID(expression string, payload schedule.Payload) (string, error) {
	body, err := value.CompactJSON(identity{Expression: expression, Payload: payload})
	if err != nil {
		return "", fmt.Errorf("encode rule identity: %w", err)
	}
	return hexMD5(body), nil
}

// Name joins an optional prefix and a payload id.
func Name(prefix, payloadID string) string {
	if prefix == "" {
		return payloadID
	}
	return prefix + "-" + payloadID
}

// GroupID derives the queue message-group key from a rule name.
func GroupID(name string) string {
	return hexMD5([]byte(name))
}

// ReferenceKey maps a resource name to a template logical id.
func ReferenceKey(name string) string {
	return CamelCase(name)
}

func hexMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
