package testutils

import (
	"testing"
	"time"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ApiaryOption customizes an apiary built by MustInsertApiary.
type ApiaryOption func(*domain.Apiary)

// WithApiaryName sets the apiary name.
func WithApiaryName(name string) ApiaryOption {
	return func(a *domain.Apiary) { a.Name = name }
}

// WithApiaryType sets the apiary type.
func WithApiaryType(t domain.ApiaryType) ApiaryOption {
	return func(a *domain.Apiary) { a.Type = &t }
}

// MustInsertApiary inserts an apiary with sensible defaults.
func MustInsertApiary(t *testing.T, db *gorm.DB, opts ...ApiaryOption) *domain.Apiary {
	t.Helper()
	apiary := &domain.Apiary{
		Name: "Test Apiary",
		Type: Ptr(domain.ApiaryTypeHobby),
		City: Ptr("Springfield"),
	}
	for _, opt := range opts {
		opt(apiary)
	}
	require.NoError(t, db.Create(apiary).Error, "Failed to insert apiary")
	return apiary
}

// HiveOption customizes a hive built by MustInsertHive.
type HiveOption func(*domain.Hive)

// WithHiveIdentifier sets the hive identifier.
func WithHiveIdentifier(id string) HiveOption {
	return func(h *domain.Hive) { h.HiveIdentifier = &id }
}

// WithHiveStatus sets the hive status.
func WithHiveStatus(status string) HiveOption {
	return func(h *domain.Hive) { h.Status = &status }
}

// WithHiveType sets the hive type.
func WithHiveType(t domain.HiveType) HiveOption {
	return func(h *domain.Hive) { h.Type = &t }
}

// MustInsertHive inserts a hive in the given apiary.
func MustInsertHive(t *testing.T, db *gorm.DB, apiaryID int64, opts ...HiveOption) *domain.Hive {
	t.Helper()
	hive := &domain.Hive{
		ApiaryID:       apiaryID,
		HiveIdentifier: Ptr("H-1"),
		Status:         Ptr("ACTIVE"),
		Type:           Ptr(domain.HiveTypeLangstroth),
	}
	for _, opt := range opts {
		opt(hive)
	}
	require.NoError(t, db.Create(hive).Error, "Failed to insert hive")
	return hive
}

// MustInsertInspection inserts a bare inspection of hive on date.
func MustInsertInspection(t *testing.T, db *gorm.DB, hive *domain.Hive, date time.Time) *domain.Inspection {
	t.Helper()
	inspection := &domain.Inspection{
		ApiaryID:       hive.ApiaryID,
		HiveID:         hive.ID,
		InspectionDate: date.UTC(),
	}
	require.NoError(t, db.Create(inspection).Error, "Failed to insert inspection")
	return inspection
}

// MustInsertTask inserts a pending task in the apiary starting on date.
func MustInsertTask(t *testing.T, db *gorm.DB, apiaryID int64, title string, date time.Time) *domain.Task {
	t.Helper()
	task := &domain.Task{
		ApiaryID:  apiaryID,
		Title:     title,
		StartDate: date.UTC(),
		Status:    domain.TaskStatusPending,
		Priority:  domain.TaskPriorityNormal,
	}
	require.NoError(t, db.Create(task).Error, "Failed to insert task")
	return task
}

// MustInsertFeeding inserts a feeding of hive on date.
func MustInsertFeeding(t *testing.T, db *gorm.DB, hive *domain.Hive, date time.Time) *domain.Feeding {
	t.Helper()
	feeding := &domain.Feeding{
		ApiaryID:    hive.ApiaryID,
		HiveID:      &hive.ID,
		FeedingDate: date.UTC(),
		FeedingType: Ptr("Syrup"),
		Quantity:    Ptr(2.0),
	}
	require.NoError(t, db.Create(feeding).Error, "Failed to insert feeding")
	return feeding
}

// MustInsertHarvest inserts a honey harvest of hive on date.
func MustInsertHarvest(t *testing.T, db *gorm.DB, hive *domain.Hive, date time.Time) *domain.Harvest {
	t.Helper()
	harvest := &domain.Harvest{
		ApiaryID:      hive.ApiaryID,
		HiveID:        &hive.ID,
		HarvestDate:   date.UTC(),
		ProductType:   Ptr(domain.HarvestProductHoney),
		TotalQuantity: Ptr(10.5),
		Unit:          Ptr(domain.HarvestUnitKilogram),
	}
	require.NoError(t, db.Create(harvest).Error, "Failed to insert harvest")
	return harvest
}

// MustInsertTreatment inserts a treatment of hive running from start until end.
// A nil end leaves the treatment open.
func MustInsertTreatment(t *testing.T, db *gorm.DB, hive *domain.Hive, start time.Time, end *time.Time) *domain.Treatment {
	t.Helper()
	treatment := &domain.Treatment{
		ApiaryID:  hive.ApiaryID,
		HiveID:    &hive.ID,
		Disease:   Ptr("Varroa"),
		StartDate: start.UTC(),
		EndDate:   end,
	}
	require.NoError(t, db.Create(treatment).Error, "Failed to insert treatment")
	return treatment
}
