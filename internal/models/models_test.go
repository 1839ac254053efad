package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

// ============================================================================
// Validation Tests
// ============================================================================

func TestApiaryValidate(t *testing.T) {
	tests := []struct {
		name    string
		apiary  Apiary
		wantErr error
	}{
		{"valid", Apiary{Name: "North Field"}, nil},
		{"empty name", Apiary{}, ErrEmptyName},
		{"name at limit", Apiary{Name: strings.Repeat("a", MaxNameLength)}, nil},
		{"name too long", Apiary{Name: strings.Repeat("a", MaxNameLength+1)}, ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.apiary.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestHiveValidate(t *testing.T) {
	assert.NoError(t, Hive{Name: "Hive 1"}.Validate())
	assert.ErrorIs(t, Hive{}.Validate(), ErrEmptyName)
}

func TestRecordValidate(t *testing.T) {
	now := time.Now()

	assert.NoError(t, Record{Timestamp: now, NumBees: 0}.Validate())
	assert.ErrorIs(t, Record{NumBees: 3}.Validate(), ErrMissingTimestamp)
	assert.ErrorIs(t, Record{Timestamp: now, NumBees: -1}.Validate(), ErrNegativeBees)
	assert.ErrorIs(t, MeteoRecord{}.Validate(), ErrMissingTimestamp)
}

// ============================================================================
// Clone Tests
// ============================================================================

func TestApiaryCloneIsIndependent(t *testing.T) {
	a := Apiary{ID: 1, Name: "North Field", LocationLat: ptr(40.4), LocationLong: ptr(-3.7)}
	c := a.Clone()

	*c.LocationLat = 0
	c.Name = "changed"

	assert.Equal(t, 40.4, *a.LocationLat)
	assert.Equal(t, "North Field", a.Name)
}

func TestHiveCloneIsIndependent(t *testing.T) {
	h := Hive{
		ID:   7,
		Name: "Hive",
		Recordings: []Recording{{
			HiveID:  7,
			Records: []Record{{ID: 1, NumBees: 5, Temperature: ptr(21)}},
		}},
	}
	c := h.Clone()

	c.Recordings[0].Records[0].NumBees = 99
	*c.Recordings[0].Records[0].Temperature = 99

	assert.Equal(t, 5, h.Recordings[0].Records[0].NumBees)
	assert.Equal(t, 21.0, *h.Recordings[0].Records[0].Temperature)
}

func TestCloneKeepsNilSlices(t *testing.T) {
	assert.Nil(t, CloneRecords(nil))
	assert.Nil(t, CloneMeteo(nil))
	assert.Nil(t, Hive{}.Clone().Recordings)
}

// ============================================================================
// Day Range Tests
// ============================================================================

func TestDayRange(t *testing.T) {
	start := time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 3, 8, 0, 0, 0, time.UTC)

	from, to := DayRange(start, end)

	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.May, 3, 23, 59, 59, 999999999, time.UTC), to)
}

func TestEndOfDayAcrossMonth(t *testing.T) {
	got := EndOfDay(time.Date(2024, time.February, 29, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC), got)
}

// ============================================================================
// Stats Tests
// ============================================================================

func TestRecordingStats(t *testing.T) {
	r := Recording{
		Records: []Record{
			{NumBees: 10, Temperature: ptr(20)},
			{NumBees: 30},
			{NumBees: 20, Temperature: ptr(24)},
		},
		Meteo: []MeteoRecord{{Temperature: 10}, {Temperature: 14}},
	}

	s := r.Stats()

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 30, s.MaxBees)
	assert.InDelta(t, 20.0, s.MeanBees, 1e-9)
	require.NotNil(t, s.MinTemp)
	assert.Equal(t, 20.0, *s.MinTemp)
	assert.Equal(t, 24.0, *s.MaxTemp)
	require.NotNil(t, s.MeanMeteoTmp)
	assert.Equal(t, 12.0, *s.MeanMeteoTmp)
}

func TestRecordingStatsEmpty(t *testing.T) {
	s := Recording{}.Stats()
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.MinTemp)
	assert.Nil(t, s.MeanMeteoTmp)
}
