package datasource

import (
	"context"
	"fmt"

	"github.com/gobees/gobees/internal/events"
	"github.com/gobees/gobees/internal/models"
)

func (r *Repository) GetApiaries(ctx context.Context, cb GetApiariesCallback) {
	r.async(ctx, "get_apiaries", func(ctx context.Context, store Store) func() {
		apiaries, err := r.loadApiaries(ctx, store)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "get_apiaries", err)
		}
		return func() { cb.OnApiariesLoaded(apiaries) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

// loadApiaries serves the list from the cache when it is warm. Concurrent
// misses share one store read.
func (r *Repository) loadApiaries(ctx context.Context, store Store) ([]models.Apiary, error) {
	if warm, _ := r.lists.Get(apiaryListKey); warm {
		r.hit()
		return cloneApiaries(r.apiaries.Values(nil)), nil
	}

	listGen, gen := r.lists.Generation(), r.apiaries.Generation()
	v, err, _ := r.group.Do(flightKey(apiaryListKey, listGen, gen), func() (any, error) {
		r.miss()

		apiaries, err := store.GetAllApiaries(ctx)
		if err != nil {
			return nil, err
		}

		entries := make(map[int64]models.Apiary, len(apiaries))
		for _, a := range apiaries {
			entries[a.ID] = a.Clone()
		}
		if r.apiaries.SetIfCurrent(gen, entries) {
			r.lists.SetIfCurrent(listGen, map[string]bool{apiaryListKey: true})
		}
		return apiaries, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneApiaries(v.([]models.Apiary)), nil
}

func (r *Repository) GetApiary(ctx context.Context, id int64, cb GetApiaryCallback) {
	r.async(ctx, "get_apiary", func(ctx context.Context, store Store) func() {
		apiary, err := r.loadApiary(ctx, store, id)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "get_apiary", err, "apiary_id", id)
		}
		return func() { cb.OnApiaryLoaded(apiary) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

func (r *Repository) loadApiary(ctx context.Context, store Store, id int64) (models.Apiary, error) {
	if a, ok := r.apiaries.Get(id); ok {
		r.hit()
		return a.Clone(), nil
	}

	gen := r.apiaries.Generation()
	v, err, _ := r.group.Do(flightKey(fmt.Sprintf("apiary#%d", id), gen), func() (any, error) {
		r.miss()

		a, err := store.GetApiary(ctx, id)
		if err != nil {
			return nil, err
		}
		r.apiaries.SetIfCurrent(gen, map[int64]models.Apiary{id: a.Clone()})
		return a, nil
	})
	if err != nil {
		return models.Apiary{}, err
	}
	return v.(models.Apiary).Clone(), nil
}

func (r *Repository) SaveApiary(ctx context.Context, apiary models.Apiary, cb TaskCallback) {
	apiary = apiary.Clone()
	r.async(ctx, "save_apiary", func(ctx context.Context, store Store) func() {
		saved, err := store.SaveApiary(ctx, apiary)
		if err != nil {
			return r.failed(cb, "save_apiary", err, "apiary_id", apiary.ID)
		}
		r.apiaries.Set(saved.ID, saved.Clone())
		return r.succeeded(cb, events.Event{Type: events.EventApiarySaved, ApiaryID: saved.ID})
	}, r.taskFailure(cb))
}

// RefreshApiaries drops every cached apiary so the next read goes to the store
func (r *Repository) RefreshApiaries() {
	r.metrics.Refreshes.Add(1)
	r.lists.Delete(apiaryListKey)
	r.apiaries.Purge()
}

func (r *Repository) DeleteApiary(ctx context.Context, id int64, cb TaskCallback) {
	r.async(ctx, "delete_apiary", func(ctx context.Context, store Store) func() {
		if err := store.DeleteApiary(ctx, id); err != nil {
			return r.failed(cb, "delete_apiary", err, "apiary_id", id)
		}
		r.forgetApiary(id)
		return r.succeeded(cb, events.Event{Type: events.EventApiaryDeleted, ApiaryID: id})
	}, r.taskFailure(cb))
}

// forgetApiary drops an apiary and everything cached beneath it
func (r *Repository) forgetApiary(id int64) {
	r.apiaries.Delete(id)
	r.lists.Delete(hiveListKey(id))
	r.hives.DeleteFunc(func(_ int64, h models.Hive) bool { return h.ApiaryID == id })
	r.recordings.DeleteFunc(func(_ string, rec models.Recording) bool { return rec.ApiaryID == id })
}

func (r *Repository) DeleteAllApiaries(ctx context.Context, cb TaskCallback) {
	r.async(ctx, "delete_all_apiaries", func(ctx context.Context, store Store) func() {
		if err := store.DeleteAllApiaries(ctx); err != nil {
			return r.failed(cb, "delete_all_apiaries", err)
		}
		r.purge()
		return r.succeeded(cb, events.Event{Type: events.EventApiariesCleared})
	}, r.taskFailure(cb))
}

func (r *Repository) GetNextApiaryID(ctx context.Context, cb GetNextApiaryIDCallback) {
	r.async(ctx, "next_apiary_id", func(ctx context.Context, store Store) func() {
		id, err := store.NextApiaryID(ctx)
		if err != nil {
			return r.unavailable(cb.OnDataNotAvailable, "next_apiary_id", err)
		}
		return func() { cb.OnNextApiaryIDLoaded(id) }
	}, r.notAvailable(cb.OnDataNotAvailable))
}

func cloneApiaries(in []models.Apiary) []models.Apiary {
	out := make([]models.Apiary, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}
