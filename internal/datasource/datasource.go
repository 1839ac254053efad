// Package datasource is the data access API presenters talk to.
//
// Every read and write is asynchronous: the method returns immediately and
// the outcome arrives later through exactly one callback method. Reads are
// served from an in-memory cache when it is warm and from the store
// otherwise; writes go to the store first and update the cache after the
// store accepted them.
package datasource

import (
	"context"
	"time"

	"github.com/gobees/gobees/internal/models"
)

// DataSource is the contract between presenters and the data layer.
// Values passed in and handed back are copies; mutating them never
// changes cached or stored state.
type DataSource interface {
	// OpenDB opens the store. A second call returns ErrAlreadyOpen.
	OpenDB(ctx context.Context) error
	// CloseDB waits for in-flight requests and closes the store.
	// Requests issued afterwards fail with ErrClosed.
	CloseDB() error

	// DeleteAll removes every entity and resets id assignment.
	DeleteAll(ctx context.Context, cb TaskCallback)

	GetApiaries(ctx context.Context, cb GetApiariesCallback)
	GetApiary(ctx context.Context, id int64, cb GetApiaryCallback)
	SaveApiary(ctx context.Context, apiary models.Apiary, cb TaskCallback)
	RefreshApiaries()
	DeleteApiary(ctx context.Context, id int64, cb TaskCallback)
	DeleteAllApiaries(ctx context.Context, cb TaskCallback)
	GetNextApiaryID(ctx context.Context, cb GetNextApiaryIDCallback)

	GetHives(ctx context.Context, apiaryID int64, cb GetHivesCallback)
	GetHive(ctx context.Context, id int64, cb GetHiveCallback)
	// GetHiveWithRecordings loads the hive with one Recording per calendar
	// day that has records, newest day first. Weather data is not included.
	GetHiveWithRecordings(ctx context.Context, id int64, cb GetHiveCallback)
	RefreshHives(apiaryID int64)
	SaveHive(ctx context.Context, apiaryID int64, hive models.Hive, cb TaskCallback)
	DeleteHive(ctx context.Context, id int64, cb TaskCallback)
	GetNextHiveID(ctx context.Context, cb GetNextHiveIDCallback)

	SaveRecord(ctx context.Context, hiveID int64, record models.Record, cb TaskCallback)
	// SaveRecords stores the whole batch or none of it.
	SaveRecords(ctx context.Context, hiveID int64, records []models.Record, cb TaskCallback)
	SaveMeteoRecord(ctx context.Context, apiaryID int64, meteo models.MeteoRecord, cb TaskCallback)

	// GetRecording loads the records of a hive between the start of the
	// start day and the end of the end day, with the apiary's weather data.
	GetRecording(ctx context.Context, hiveID int64, start, end time.Time, cb GetRecordingCallback)
	RefreshRecordings(hiveID int64)
}

// Compile-time verification that *Repository implements DataSource
var _ DataSource = (*Repository)(nil)
