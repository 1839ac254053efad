package models

import "time"

// Recording groups the records of a hive over a range of calendar days.
// Meteo is nil when the read that produced it excluded weather data.
type Recording struct {
	ApiaryID int64         `json:"apiary_id" yaml:"apiary_id"`
	HiveID   int64         `json:"hive_id" yaml:"hive_id"`
	Start    time.Time     `json:"start" yaml:"start"`
	End      time.Time     `json:"end" yaml:"end"`
	Records  []Record      `json:"records" yaml:"records"`
	Meteo    []MeteoRecord `json:"meteo,omitempty" yaml:"meteo,omitempty"`
}

// Clone returns a deep copy that shares no memory with r.
func (r Recording) Clone() Recording {
	c := r
	c.Records = CloneRecords(r.Records)
	c.Meteo = CloneMeteo(r.Meteo)
	return c
}

// StartOfDay returns 00:00:00 of the day t falls on, in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the day t falls on, in t's location
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayRange widens [start, end] to cover both calendar days completely
func DayRange(start, end time.Time) (time.Time, time.Time) {
	return StartOfDay(start), EndOfDay(end)
}
