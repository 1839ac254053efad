package models

import "time"

// Hive represents a single beehive inside an apiary
type Hive struct {
	ID           int64     `json:"id" yaml:"id"`
	ApiaryID     int64     `json:"apiary_id" yaml:"apiary_id"`
	Name         string    `json:"name" yaml:"name"`
	ImageURL     string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Notes        string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	LastRevision time.Time `json:"last_revision" yaml:"last_revision"`

	// Recordings is only populated by hive reads that hydrate records,
	// one entry per calendar day, newest first.
	Recordings []Recording `json:"recordings,omitempty" yaml:"recordings,omitempty"`
}

// GetID returns the hive id
func (h Hive) GetID() int64 {
	return h.ID
}

// Clone returns a deep copy that shares no memory with h.
func (h Hive) Clone() Hive {
	c := h
	if h.Recordings != nil {
		c.Recordings = make([]Recording, len(h.Recordings))
		for i, r := range h.Recordings {
			c.Recordings[i] = r.Clone()
		}
	}
	return c
}

// Validate checks the fields the store requires
func (h Hive) Validate() error {
	return validateName(h.Name)
}
