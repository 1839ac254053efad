package models

import "time"

// Record is a single timestamped reading taken at a hive entrance
type Record struct {
	ID          int64     `json:"id" yaml:"id"`
	HiveID      int64     `json:"hive_id" yaml:"hive_id"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	NumBees     int       `json:"num_bees" yaml:"num_bees"`
	Temperature *float64  `json:"temperature,omitempty" yaml:"temperature,omitempty"` // hive sensor, Celsius
}

// Clone returns a deep copy that shares no memory with r.
func (r Record) Clone() Record {
	c := r
	c.Temperature = cloneFloat(r.Temperature)
	return c
}

// Validate checks the fields the store requires
func (r Record) Validate() error {
	if r.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	if r.NumBees < 0 {
		return ErrNegativeBees
	}
	return nil
}

// CloneRecords copies a slice of records. A nil slice stays nil.
func CloneRecords(rs []Record) []Record {
	if rs == nil {
		return nil
	}
	out := make([]Record, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}
