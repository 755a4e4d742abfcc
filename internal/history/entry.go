// Package history keeps a local record of every create and delete run,
// so an instance's ID can still be found after its id file is gone.
package history

import "time"

// Outcomes recorded for an operation.
const (
	OutcomeCreated = "created"
	OutcomeExists  = "exists"
	OutcomeDeleted = "deleted"
	OutcomeNothing = "nothing"
	OutcomeError   = "error"
)

// Entry is one recorded lifecycle operation.
type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Operation  string    `json:"operation"`
	ConfigPath string    `json:"config_path"`
	Provider   string    `json:"provider,omitempty"`
	ServerID   string    `json:"server_id,omitempty"`
	ServerName string    `json:"server_name,omitempty"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}
