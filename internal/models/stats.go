package models

import "math"

// RecordingStats summarises the records of a recording
type RecordingStats struct {
	Count        int      `json:"count" yaml:"count"`
	MaxBees      int      `json:"max_bees" yaml:"max_bees"`
	MeanBees     float64  `json:"mean_bees" yaml:"mean_bees"`
	MinTemp      *float64 `json:"min_temp,omitempty" yaml:"min_temp,omitempty"`
	MaxTemp      *float64 `json:"max_temp,omitempty" yaml:"max_temp,omitempty"`
	MeanMeteoTmp *float64 `json:"mean_meteo_temp,omitempty" yaml:"mean_meteo_temp,omitempty"`
}

// Stats computes bee and temperature aggregates over the recording
func (r Recording) Stats() RecordingStats {
	s := RecordingStats{Count: len(r.Records)}
	if s.Count == 0 {
		return s
	}

	sum := 0
	minT, maxT := math.Inf(1), math.Inf(-1)
	for _, rec := range r.Records {
		sum += rec.NumBees
		if rec.NumBees > s.MaxBees {
			s.MaxBees = rec.NumBees
		}
		if rec.Temperature != nil {
			minT = math.Min(minT, *rec.Temperature)
			maxT = math.Max(maxT, *rec.Temperature)
		}
	}
	s.MeanBees = float64(sum) / float64(s.Count)

	if !math.IsInf(minT, 1) {
		s.MinTemp = &minT
		s.MaxTemp = &maxT
	}

	if len(r.Meteo) > 0 {
		total := 0.0
		for _, m := range r.Meteo {
			total += m.Temperature
		}
		mean := total / float64(len(r.Meteo))
		s.MeanMeteoTmp = &mean
	}

	return s
}
