// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Entry records one durable mutation. The trail is best-effort: failing to
// index an entry never rolls back or fails the mutation it describes.
type Entry struct {
	Timestamp  time.Time       `json:"timestamp"`
	ActorID    string          `json:"actor_id"`
	Action     string          `json:"action"`
	EntityKind string          `json:"entity_kind"`
	EntityID   string          `json:"entity_id"`
	Details    json.RawMessage `json:"details,omitempty"`
}
