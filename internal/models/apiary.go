package models

import "time"

// Apiary represents a location holding a group of hives.
// Apiaries are the top-level organizational unit in GoBees.
type Apiary struct {
	ID           int64     `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	ImageURL     string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	LocationLat  *float64  `json:"location_lat,omitempty" yaml:"location_lat,omitempty"`
	LocationLong *float64  `json:"location_long,omitempty" yaml:"location_long,omitempty"`
	Notes        string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	LastRevision time.Time `json:"last_revision" yaml:"last_revision"`
}

// GetID returns the apiary id
func (a Apiary) GetID() int64 {
	return a.ID
}

// HasLocation reports whether both coordinates are set
func (a Apiary) HasLocation() bool {
	return a.LocationLat != nil && a.LocationLong != nil
}

// Clone returns a deep copy that shares no memory with a.
func (a Apiary) Clone() Apiary {
	c := a
	c.LocationLat = cloneFloat(a.LocationLat)
	c.LocationLong = cloneFloat(a.LocationLong)
	return c
}

// Validate checks the fields the store requires
func (a Apiary) Validate() error {
	return validateName(a.Name)
}
