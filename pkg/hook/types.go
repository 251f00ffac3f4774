package hook

import "encoding/json"

// Event is the body POSTed to the configured decision webhook.
type Event struct {
	Source   string          `json:"source"`
	EventID  string          `json:"event_id"`
	Decision json.RawMessage `json:"decision"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}
