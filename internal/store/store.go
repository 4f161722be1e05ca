package store

import (
	"context"
	"time"

	"github.com/phrazzld/apiary-api/internal/domain"
	"gorm.io/gorm"
)

// Fields is a set of column values for a partial update.
// Keys are column names; only the listed columns are written.
type Fields map[string]any

// Set stores *v under column when v is non-nil.
func Set[T any](f Fields, column string, v *T) {
	if v != nil {
		f[column] = *v
	}
}

// Columns returns the column names present in f.
func (f Fields) Columns() []string {
	cols := make([]string, 0, len(f))
	for c := range f {
		cols = append(cols, c)
	}
	return cols
}

// RecordStore is the CRUD contract shared by all entity stores.
// T is the entity type and F its list filter.
type RecordStore[T any, F any] interface {
	// Create inserts one or more records. Generated IDs are written back
	// into the passed values.
	Create(ctx context.Context, records ...*T) error

	// GetByID retrieves a record with its related data loaded.
	// Returns the entity-specific not found error if it does not exist.
	GetByID(ctx context.Context, id int64) (*T, error)

	// List returns the records matching filter in the store's natural order.
	List(ctx context.Context, filter F) ([]T, error)

	// Update writes the given columns of the record with id.
	// Returns the entity-specific not found error if it does not exist.
	Update(ctx context.Context, id int64, fields Fields) error

	// Delete removes a record and its dependent rows.
	// Returns the entity-specific not found error if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// ApiaryFilter narrows apiary listings.
type ApiaryFilter struct {
	Type *domain.ApiaryType
}

// HiveFilter narrows hive listings.
type HiveFilter struct {
	ApiaryID *int64
	Type     *domain.HiveType
	Status   *string
}

// InspectionFilter narrows inspection listings.
type InspectionFilter struct {
	ApiaryID *int64
	HiveID   *int64
	FromDate *time.Time
	ToDate   *time.Time
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	ApiaryID *int64
	HiveID   *int64
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
	Type     *string
}

// FeedingFilter narrows feeding listings. Dates bound feeding_date.
type FeedingFilter struct {
	ApiaryID    *int64
	HiveID      *int64
	FeedingType *string
	FoodType    *string
	FromDate    *time.Time
	ToDate      *time.Time
}

// HarvestFilter narrows harvest listings. Dates bound harvest_date.
type HarvestFilter struct {
	ApiaryID    *int64
	HiveID      *int64
	ProductType *domain.HarvestProduct
	Variety     *string
	FromDate    *time.Time
	ToDate      *time.Time
}

// TreatmentFilter narrows treatment listings. Dates bound start_date.
// When ActiveAt is set only treatments running at that instant are returned.
type TreatmentFilter struct {
	ApiaryID         *int64
	HiveID           *int64
	Disease          *string
	TreatmentProduct *string
	FromDate         *time.Time
	ToDate           *time.Time
	ActiveAt         *time.Time
}

// ApiaryStore persists apiaries.
type ApiaryStore interface {
	RecordStore[domain.Apiary, ApiaryFilter]
	WithTx(tx *gorm.DB) ApiaryStore
}

// HiveStore persists hives and their colony and queen details.
type HiveStore interface {
	RecordStore[domain.Hive, HiveFilter]

	// UpsertColonyInfo inserts the colony info of info.HiveID or, if it
	// exists, overwrites the given columns.
	UpsertColonyInfo(ctx context.Context, info *domain.HiveColonyInfo, columns []string) error

	// UpsertQueen inserts the queen of queen.HiveID or, if it exists,
	// overwrites the given columns.
	UpsertQueen(ctx context.Context, queen *domain.HiveQueen, columns []string) error

	// MoveRecords sets apiary_id to apiaryID on every inspection, task and
	// hive record that references hiveID.
	MoveRecords(ctx context.Context, hiveID, apiaryID int64) error

	WithTx(tx *gorm.DB) HiveStore
}

// InspectionStore persists inspections and their detail sections.
type InspectionStore interface {
	RecordStore[domain.Inspection, InspectionFilter]

	// UpsertDetail inserts a detail section keyed by its inspection ID or,
	// if one exists, overwrites the given columns.
	UpsertDetail(ctx context.Context, detail domain.InspectionDetail, columns []string) error

	WithTx(tx *gorm.DB) InspectionStore
}

// TaskStore persists tasks.
type TaskStore interface {
	RecordStore[domain.Task, TaskFilter]
	WithTx(tx *gorm.DB) TaskStore
}

// FeedingStore persists feedings.
type FeedingStore interface {
	RecordStore[domain.Feeding, FeedingFilter]
	WithTx(tx *gorm.DB) FeedingStore
}

// HarvestStore persists harvests.
type HarvestStore interface {
	RecordStore[domain.Harvest, HarvestFilter]
	WithTx(tx *gorm.DB) HarvestStore
}

// TreatmentStore persists treatments.
type TreatmentStore interface {
	RecordStore[domain.Treatment, TreatmentFilter]
	WithTx(tx *gorm.DB) TreatmentStore
}
