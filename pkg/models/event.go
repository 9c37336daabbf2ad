package models

import "time"

// Event types appended to the run log.
const (
	EventTypeState       = "state"
	EventTypeStageStart  = "stage_start"
	EventTypeStageFinish = "stage_finish"
	EventTypeLog         = "log"
	EventTypeError       = "error"
	EventTypeProgress    = "progress"
)

// Event levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// AppendEventInput describes one event append. TenantID and RunID are
// supplied by the caller; event_number and ts are allocated by the service.
type AppendEventInput struct {
	Stage     string
	EventType string
	Level     string
	Message   string
	Payload   map[string]interface{}
}

// EventRecord is the wire form of one run event, serialized into both the
// JSON listing and the SSE data frame. Every key is always present: stage is
// empty and payload null for events that carry neither.
type EventRecord struct {
	ID        int                    `json:"id"`
	TS        time.Time              `json:"ts"`
	Level     string                 `json:"level"`
	Stage     string                 `json:"stage"`
	EventType string                 `json:"event_type"`
	Message   string                 `json:"message"`
	Payload   map[string]interface{} `json:"payload"`
}
