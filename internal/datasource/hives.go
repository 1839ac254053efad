package datasource

import (
	"context"
	"fmt"
	"slices"

	"github.com/gobees/gobees/internal/events"
	"github.com/gobees/gobees/internal/models"
)

func (r *Repository) GetHives(ctx context.Context, apiaryID int64, cb GetHivesCallback) {
	r.async(ctx, "get_hives", func(ctx context.Context, store Store) func() {
		hives, err := r.loadHives(ctx, store, apiaryID)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "get_hives", err, "apiary_id", apiaryID)
		}
		return func() { cb.OnHivesLoaded(hives) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

func (r *Repository) loadHives(ctx context.Context, store Store, apiaryID int64) ([]models.Hive, error) {
	key := hiveListKey(apiaryID)
	if warm, _ := r.lists.Get(key); warm {
		r.hit()
		return cloneHives(r.hives.Values(func(_ int64, h models.Hive) bool {
			return h.ApiaryID == apiaryID
		})), nil
	}

	listGen, gen := r.lists.Generation(), r.hives.Generation()
	v, err, _ := r.group.Do(flightKey(key, listGen, gen), func() (any, error) {
		r.miss()

		hives, err := store.GetHivesByApiary(ctx, apiaryID)
		if err != nil {
			return nil, err
		}

		entries := make(map[int64]models.Hive, len(hives))
		for _, h := range hives {
			entries[h.ID] = h.Clone()
		}
		if r.hives.SetIfCurrent(gen, entries) {
			r.lists.SetIfCurrent(listGen, map[string]bool{key: true})
		}
		return hives, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneHives(v.([]models.Hive)), nil
}

func (r *Repository) GetHive(ctx context.Context, id int64, cb GetHiveCallback) {
	r.async(ctx, "get_hive", func(ctx context.Context, store Store) func() {
		hive, err := r.loadHive(ctx, store, id)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "get_hive", err, "hive_id", id)
		}
		return func() { cb.OnHiveLoaded(hive) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

func (r *Repository) loadHive(ctx context.Context, store Store, id int64) (models.Hive, error) {
	if h, ok := r.hives.Get(id); ok {
		r.hit()
		return h.Clone(), nil
	}

	gen := r.hives.Generation()
	v, err, _ := r.group.Do(flightKey(fmt.Sprintf("hive#%d", id), gen), func() (any, error) {
		r.miss()

		h, err := store.GetHive(ctx, id)
		if err != nil {
			return nil, err
		}
		r.hives.SetIfCurrent(gen, map[int64]models.Hive{id: h.Clone()})
		return h, nil
	})
	if err != nil {
		return models.Hive{}, err
	}
	return v.(models.Hive).Clone(), nil
}

// GetHiveWithRecordings always reads the store; the result is not cached.
func (r *Repository) GetHiveWithRecordings(ctx context.Context, id int64, cb GetHiveCallback) {
	r.async(ctx, "get_hive_with_recordings", func(ctx context.Context, store Store) func() {
		r.metrics.StoreReads.Add(1)
		hive, err := store.GetHive(ctx, id)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "get_hive_with_recordings", err, "hive_id", id)
		}
		records, err := store.GetRecordsByHive(ctx, id)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "get_hive_with_recordings", err, "hive_id", id)
		}

		hive.Recordings = groupByDay(hive, records)
		return func() { cb.OnHiveLoaded(hive) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

// groupByDay splits records into one Recording per calendar day, newest day
// first. Records keep their ascending order inside a day.
func groupByDay(hive models.Hive, records []models.Record) []models.Recording {
	var days []models.Recording
	for _, rec := range records {
		start := models.StartOfDay(rec.Timestamp)
		n := len(days)
		if n > 0 && days[n-1].Start.Equal(start) {
			days[n-1].Records = append(days[n-1].Records, rec)
			continue
		}
		days = append(days, models.Recording{
			ApiaryID: hive.ApiaryID,
			HiveID:   hive.ID,
			Start:    start,
			End:      models.EndOfDay(rec.Timestamp),
			Records:  []models.Record{rec},
		})
	}
	slices.Reverse(days)
	return days
}

// RefreshHives drops the cached hive list of the apiary and its hives
func (r *Repository) RefreshHives(apiaryID int64) {
	r.metrics.Refreshes.Add(1)
	r.lists.Delete(hiveListKey(apiaryID))
	r.hives.DeleteFunc(func(_ int64, h models.Hive) bool { return h.ApiaryID == apiaryID })
}

func (r *Repository) SaveHive(ctx context.Context, apiaryID int64, hive models.Hive, cb TaskCallback) {
	hive = hive.Clone()
	hive.ApiaryID = apiaryID
	r.async(ctx, "save_hive", func(ctx context.Context, store Store) func() {
		saved, err := store.SaveHive(ctx, hive)
		if err != nil {
			return r.failed(cb, "save_hive", err, "hive_id", hive.ID, "apiary_id", apiaryID)
		}
		r.hives.Set(saved.ID, saved.Clone())
		r.forgetRecordings(saved.ID)
		return r.succeeded(cb, events.Event{Type: events.EventHiveSaved, ApiaryID: apiaryID, HiveID: saved.ID})
	}, r.taskFailure(cb))
}

func (r *Repository) DeleteHive(ctx context.Context, id int64, cb TaskCallback) {
	r.async(ctx, "delete_hive", func(ctx context.Context, store Store) func() {
		var apiaryID int64
		if h, ok := r.hives.Get(id); ok {
			apiaryID = h.ApiaryID
		} else if h, err := store.GetHive(ctx, id); err == nil {
			apiaryID = h.ApiaryID
		}
		if err := store.DeleteHive(ctx, id); err != nil {
			return r.failed(cb, "delete_hive", err, "hive_id", id)
		}
		r.hives.Delete(id)
		r.forgetRecordings(id)
		return r.succeeded(cb, events.Event{Type: events.EventHiveDeleted, ApiaryID: apiaryID, HiveID: id})
	}, r.taskFailure(cb))
}

func (r *Repository) GetNextHiveID(ctx context.Context, cb GetNextHiveIDCallback) {
	r.async(ctx, "next_hive_id", func(ctx context.Context, store Store) func() {
		id, err := store.NextHiveID(ctx)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "next_hive_id", err)
		}
		return func() { cb.OnNextHiveIDLoaded(id) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

func cloneHives(in []models.Hive) []models.Hive {
	out := make([]models.Hive, len(in))
	for i, h := range in {
		out[i] = h.Clone()
	}
	return out
}
