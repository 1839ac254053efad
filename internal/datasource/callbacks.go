package datasource

import "github.com/gobees/gobees/internal/models"

// TaskCallback receives the outcome of a write
type TaskCallback interface {
	OnSuccess()
	// OnFailure receives the cause for logging. Callers treat every
	// failure the same way.
	OnFailure(err error)
}

type GetApiariesCallback interface {
	OnApiariesLoaded(apiaries []models.Apiary)
	OnDataNotAvailable()
}

type GetApiaryCallback interface {
	OnApiaryLoaded(apiary models.Apiary)
	OnDataNotAvailable()
}

type GetNextApiaryIDCallback interface {
	OnNextApiaryIDLoaded(id int64)
	OnDataNotAvailable()
}

type GetHivesCallback interface {
	OnHivesLoaded(hives []models.Hive)
	OnDataNotAvailable()
}

type GetHiveCallback interface {
	OnHiveLoaded(hive models.Hive)
	OnDataNotAvailable()
}

type GetNextHiveIDCallback interface {
	OnNextHiveIDLoaded(id int64)
	OnDataNotAvailable()
}

type GetRecordingCallback interface {
	OnRecordingLoaded(recording models.Recording)
	OnDataNotAvailable()
}

// ============================================================================
// FUNC ADAPTERS
// Let callers pass closures. A nil field ignores that outcome.
// ============================================================================

// TaskFuncs adapts two closures to TaskCallback
type TaskFuncs struct {
	Success func()
	Failure func(err error)
}

func (f TaskFuncs) OnSuccess() {
	if f.Success != nil {
		f.Success()
	}
}

func (f TaskFuncs) OnFailure(err error) {
	if f.Failure != nil {
		f.Failure(err)
	}
}

// ApiariesFuncs adapts closures to GetApiariesCallback
type ApiariesFuncs struct {
	Loaded       func([]models.Apiary)
	NotAvailable func()
}

func (f ApiariesFuncs) OnApiariesLoaded(apiaries []models.Apiary) {
	if f.Loaded != nil {
		f.Loaded(apiaries)
	}
}

func (f ApiariesFuncs) OnDataNotAvailable() { call(f.NotAvailable) }

// ApiaryFuncs adapts closures to GetApiaryCallback
type ApiaryFuncs struct {
	Loaded       func(models.Apiary)
	NotAvailable func()
}

func (f ApiaryFuncs) OnApiaryLoaded(apiary models.Apiary) {
	if f.Loaded != nil {
		f.Loaded(apiary)
	}
}

func (f ApiaryFuncs) OnDataNotAvailable() { call(f.NotAvailable) }

// NextApiaryIDFuncs adapts closures to GetNextApiaryIDCallback
type NextApiaryIDFuncs struct {
	Loaded       func(int64)
	NotAvailable func()
}

func (f NextApiaryIDFuncs) OnNextApiaryIDLoaded(id int64) {
	if f.Loaded != nil {
		f.Loaded(id)
	}
}

func (f NextApiaryIDFuncs) OnDataNotAvailable() { call(f.NotAvailable) }

// HivesFuncs adapts closures to GetHivesCallback
type HivesFuncs struct {
	Loaded       func([]models.Hive)
	NotAvailable func()
}

func (f HivesFuncs) OnHivesLoaded(hives []models.Hive) {
	if f.Loaded != nil {
		f.Loaded(hives)
	}
}

func (f HivesFuncs) OnDataNotAvailable() { call(f.NotAvailable) }

// HiveFuncs adapts closures to GetHiveCallback
type HiveFuncs struct {
	Loaded       func(models.Hive)
	NotAvailable func()
}

func (f HiveFuncs) OnHiveLoaded(hive models.Hive) {
	if f.Loaded != nil {
		f.Loaded(hive)
	}
}

func (f HiveFuncs) OnDataNotAvailable() { call(f.NotAvailable) }

// NextHiveIDFuncs adapts closures to GetNextHiveIDCallback
type NextHiveIDFuncs struct {
	Loaded       func(int64)
	NotAvailable func()
}

func (f NextHiveIDFuncs) OnNextHiveIDLoaded(id int64) {
	if f.Loaded != nil {
		f.Loaded(id)
	}
}

func (f NextHiveIDFuncs) OnDataNotAvailable() { call(f.NotAvailable) }

// RecordingFuncs adapts closures to GetRecordingCallback
type RecordingFuncs struct {
	Loaded       func(models.Recording)
	NotAvailable func()
}

func (f RecordingFuncs) OnRecordingLoaded(recording models.Recording) {
	if f.Loaded != nil {
		f.Loaded(recording)
	}
}

func (f RecordingFuncs) OnDataNotAvailable() { call(f.NotAvailable) }

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
