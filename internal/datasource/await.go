package datasource

import (
	"context"
	"time"

	"github.com/gobees/gobees/internal/models"
)

type result[T any] struct {
	value T
	err   error
}

// await issues a request and blocks until its callback fires or ctx is done.
// The request itself keeps running when ctx ends first.
func await[T any](ctx context.Context, issue func(deliver func(T, error))) (T, error) {
	ch := make(chan result[T], 1)
	issue(func(v T, err error) {
		ch <- result[T]{value: v, err: err}
	})

	select {
	case res := <-ch:
		return res.value, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func notAvailable[T any](deliver func(T, error)) func() {
	return func() {
		var zero T
		deliver(zero, ErrDataNotAvailable)
	}
}

func loaded[T any](deliver func(T, error)) func(T) {
	return func(v T) { deliver(v, nil) }
}

// AwaitTask runs a write and returns nil on OnSuccess or the OnFailure error.
//
//	err := AwaitTask(ctx, func(cb TaskCallback) { ds.SaveApiary(ctx, a, cb) })
func AwaitTask(ctx context.Context, issue func(cb TaskCallback)) error {
	_, err := await(ctx, func(deliver func(struct{}, error)) {
		issue(TaskFuncs{
			Success: func() { deliver(struct{}{}, nil) },
			Failure: func(err error) { deliver(struct{}{}, err) },
		})
	})
	return err
}

func AwaitApiaries(ctx context.Context, ds DataSource) ([]models.Apiary, error) {
	return await(ctx, func(deliver func([]models.Apiary, error)) {
		ds.GetApiaries(ctx, ApiariesFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}

func AwaitApiary(ctx context.Context, ds DataSource, id int64) (models.Apiary, error) {
	return await(ctx, func(deliver func(models.Apiary, error)) {
		ds.GetApiary(ctx, id, ApiaryFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}

func AwaitNextApiaryID(ctx context.Context, ds DataSource) (int64, error) {
	return await(ctx, func(deliver func(int64, error)) {
		ds.GetNextApiaryID(ctx, NextApiaryIDFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}

func AwaitHives(ctx context.Context, ds DataSource, apiaryID int64) ([]models.Hive, error) {
	return await(ctx, func(deliver func([]models.Hive, error)) {
		ds.GetHives(ctx, apiaryID, HivesFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}

func AwaitHive(ctx context.Context, ds DataSource, id int64) (models.Hive, error) {
	return await(ctx, func(deliver func(models.Hive, error)) {
		ds.GetHive(ctx, id, HiveFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}

func AwaitHiveWithRecordings(ctx context.Context, ds DataSource, id int64) (models.Hive, error) {
	return await(ctx, func(deliver func(models.Hive, error)) {
		ds.GetHiveWithRecordings(ctx, id, HiveFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}

func AwaitNextHiveID(ctx context.Context, ds DataSource) (int64, error) {
	return await(ctx, func(deliver func(int64, error)) {
		ds.GetNextHiveID(ctx, NextHiveIDFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}

func AwaitRecording(ctx context.Context, ds DataSource, hiveID int64, start, end time.Time) (models.Recording, error) {
	return await(ctx, func(deliver func(models.Recording, error)) {
		ds.GetRecording(ctx, hiveID, start, end, RecordingFuncs{Loaded: loaded(deliver), NotAvailable: notAvailable(deliver)})
	})
}
