package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventApiarySaved     EventType = "apiary_saved"
	EventApiaryDeleted   EventType = "apiary_deleted"
	EventApiariesCleared EventType = "apiaries_cleared"
	EventHiveSaved       EventType = "hive_saved"
	EventHiveDeleted     EventType = "hive_deleted"
	EventRecordsSaved    EventType = "records_saved"
	EventMeteoSaved      EventType = "meteo_saved"
	EventDataCleared     EventType = "data_cleared"
)

// Event represents a committed change in the store
type Event struct {
	Type       EventType `json:"type"`
	ApiaryID   int64     `json:"apiary_id,omitempty"` // For filtering - which apiary was modified
	HiveID     int64     `json:"hive_id,omitempty"`
	Count      int       `json:"count,omitempty"` // Rows written, for batch events
	Timestamp  time.Time `json:"timestamp"`       // When the event occurred
	SequenceID int64     `json:"sequence_id"`     // Monotonically increasing sequence number for ordering
}

// Broad reports whether the event concerns every apiary rather than one
func (e Event) Broad() bool {
	return e.Type == EventApiariesCleared || e.Type == EventDataCleared
}
