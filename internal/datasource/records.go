package datasource

import (
	"context"
	"fmt"
	"time"

	"github.com/gobees/gobees/internal/events"
	"github.com/gobees/gobees/internal/models"
)

func (r *Repository) SaveRecord(ctx context.Context, hiveID int64, record models.Record, cb TaskCallback) {
	r.SaveRecords(ctx, hiveID, []models.Record{record}, cb)
}

func (r *Repository) SaveRecords(ctx context.Context, hiveID int64, records []models.Record, cb TaskCallback) {
	records = models.CloneRecords(records)
	r.async(ctx, "save_records", func(ctx context.Context, store Store) func() {
		if len(records) == 0 {
			return cb.OnSuccess
		}
		if err := store.SaveRecords(ctx, hiveID, records); err != nil {
			return r.failed(cb, "save_records", err, "hive_id", hiveID, "count", len(records))
		}
		if movesRows(records) {
			// An explicit id may have belonged to another hive
			r.recordings.Purge()
		} else {
			r.forgetRecordings(hiveID)
		}

		event := events.Event{Type: events.EventRecordsSaved, HiveID: hiveID, Count: len(records)}
		if h, ok := r.hives.Get(hiveID); ok {
			event.ApiaryID = h.ApiaryID
		}
		return r.succeeded(cb, event)
	}, r.taskFailure(cb))
}

func (r *Repository) SaveMeteoRecord(ctx context.Context, apiaryID int64, meteo models.MeteoRecord, cb TaskCallback) {
	meteo.ApiaryID = apiaryID
	r.async(ctx, "save_meteo", func(ctx context.Context, store Store) func() {
		if _, err := store.SaveMeteoRecord(ctx, meteo); err != nil {
			return r.failed(cb, "save_meteo", err, "apiary_id", apiaryID)
		}
		r.recordings.DeleteFunc(func(_ string, rec models.Recording) bool { return rec.ApiaryID == apiaryID })
		return r.succeeded(cb, events.Event{Type: events.EventMeteoSaved, ApiaryID: apiaryID})
	}, r.taskFailure(cb))
}

func (r *Repository) GetRecording(ctx context.Context, hiveID int64, start, end time.Time, cb GetRecordingCallback) {
	start, end = models.DayRange(start, end)
	r.async(ctx, "get_recording", func(ctx context.Context, store Store) func() {
		rec, err := r.loadRecording(ctx, store, hiveID, start, end)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "get_recording", err, "hive_id", hiveID)
		}
		return func() { cb.OnRecordingLoaded(rec) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

// errEmptyRecording marks a range without records; it is reported as not available
var errEmptyRecording = fmt.Errorf("no records in range: %w", ErrDataNotAvailable)

func recordingKey(hiveID int64, start, end time.Time) string {
	return fmt.Sprintf("%d#%d#%d", hiveID, start.UnixNano(), end.UnixNano())
}

func (r *Repository) loadRecording(ctx context.Context, store Store, hiveID int64, start, end time.Time) (models.Recording, error) {
	key := recordingKey(hiveID, start, end)
	if rec, ok := r.recordings.Get(key); ok {
		r.hit()
		return rec.Clone(), nil
	}

	gen := r.recordings.Generation()
	v, err, _ := r.group.Do(flightKey("recording#"+key, gen), func() (any, error) {
		hive, err := r.loadHive(ctx, store, hiveID)
		if err != nil {
			return nil, err
		}

		r.miss()
		records, err := store.GetRecordsBetween(ctx, hiveID, start, end)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, errEmptyRecording
		}
		meteo, err := store.GetMeteoBetween(ctx, hive.ApiaryID, start, end)
		if err != nil {
			return nil, err
		}

		rec := models.Recording{
			ApiaryID: hive.ApiaryID,
			HiveID:   hiveID,
			Start:    start,
			End:      end,
			Records:  records,
			Meteo:    meteo,
		}
		r.recordings.SetIfCurrent(gen, map[string]models.Recording{key: rec.Clone()})
		return rec, nil
	})
	if err != nil {
		return models.Recording{}, err
	}
	return v.(models.Recording).Clone(), nil
}

// RefreshRecordings drops every cached recording of the hive
func (r *Repository) RefreshRecordings(hiveID int64) {
	r.metrics.Refreshes.Add(1)
	r.forgetRecordings(hiveID)
}

func (r *Repository) forgetRecordings(hiveID int64) {
	r.recordings.DeleteFunc(func(_ string, rec models.Recording) bool { return rec.HiveID == hiveID })
}

func movesRows(records []models.Record) bool {
	for _, rec := range records {
		if rec.ID != 0 {
			return true
		}
	}
	return false
}
