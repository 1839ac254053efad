package models

import "time"

// MeteoRecord is one weather observation for the location of an apiary
type MeteoRecord struct {
	ID            int64     `json:"id" yaml:"id"`
	ApiaryID      int64     `json:"apiary_id" yaml:"apiary_id"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
	CityName      string    `json:"city_name,omitempty" yaml:"city_name,omitempty"`
	Condition     string    `json:"condition,omitempty" yaml:"condition,omitempty"`
	ConditionIcon string    `json:"condition_icon,omitempty" yaml:"condition_icon,omitempty"`
	Temperature   float64   `json:"temperature" yaml:"temperature"` // Celsius
	Pressure      float64   `json:"pressure" yaml:"pressure"`       // hPa
	Humidity      int       `json:"humidity" yaml:"humidity"`       // %
	WindSpeed     float64   `json:"wind_speed" yaml:"wind_speed"`   // m/s
	WindDegrees   float64   `json:"wind_degrees" yaml:"wind_degrees"`
	Clouds        int       `json:"clouds" yaml:"clouds"` // %
	Rain          float64   `json:"rain" yaml:"rain"`     // mm, last 3h
	Snow          float64   `json:"snow" yaml:"snow"`     // mm, last 3h
}

// Validate checks the fields the store requires
func (m MeteoRecord) Validate() error {
	if m.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	return nil
}

// CloneMeteo copies a slice of meteo records. A nil slice stays nil.
func CloneMeteo(ms []MeteoRecord) []MeteoRecord {
	if ms == nil {
		return nil
	}
	out := make([]MeteoRecord, len(ms))
	copy(out, ms)
	return out
}
