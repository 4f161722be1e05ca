package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// TreatmentFields are the optional treatment attributes shared by create and update.
type TreatmentFields struct {
	Scope            *string  `json:"scope"             validate:"omitempty,max=50"`
	Name             *string  `json:"name"              validate:"omitempty,max=100"`
	Disease          *string  `json:"disease"           validate:"omitempty,max=100"`
	TreatmentProduct *string  `json:"treatment_product" validate:"omitempty,max=100"`
	EndDate          *string  `json:"end_date"          validate:"omitempty,isodate"`
	InputAs          *string  `json:"input_as"          validate:"omitempty,max=50"`
	TotalQuantity    *float64 `json:"total_quantity"    validate:"omitempty,min=0"`
	Doses            *string  `json:"doses"             validate:"omitempty,max=200"`
	Notes            *string  `json:"notes"             validate:"omitempty,max=500"`
}

func (f TreatmentFields) collect(out store.Fields) {
	store.Set(out, "scope", f.Scope)
	store.Set(out, "name", f.Name)
	store.Set(out, "disease", f.Disease)
	store.Set(out, "treatment_product", f.TreatmentProduct)
	store.Set(out, "input_as", f.InputAs)
	store.Set(out, "total_quantity", f.TotalQuantity)
	store.Set(out, "doses", f.Doses)
	store.Set(out, "notes", f.Notes)
}

// CreateTreatmentParams is the body of a treatment create request.
type CreateTreatmentParams struct {
	ApiaryID        int64  `json:"apiary_id"          validate:"required,gt=0"`
	ApplyToAllHives bool   `json:"apply_to_all_hives"`
	HiveID          *int64 `json:"hive_id"            validate:"omitempty,gt=0"`
	StartDate       string `json:"start_date"         validate:"required,isodate"`
	TreatmentFields
}

func (p CreateTreatmentParams) treatment() (*domain.Treatment, error) {
	start, err := parseDate("start_date", p.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("end_date", p.EndDate)
	if err != nil {
		return nil, err
	}
	if err := checkDateRange(start, end); err != nil {
		return nil, err
	}
	return &domain.Treatment{
		Scope:            p.Scope,
		ApiaryID:         p.ApiaryID,
		ApplyToAllHives:  p.ApplyToAllHives,
		HiveID:           p.HiveID,
		Name:             p.Name,
		Disease:          p.Disease,
		TreatmentProduct: p.TreatmentProduct,
		StartDate:        start,
		EndDate:          end,
		InputAs:          p.InputAs,
		TotalQuantity:    p.TotalQuantity,
		Doses:            p.Doses,
		Notes:            p.Notes,
	}, nil
}

// UpdateTreatmentParams is the body of a treatment update request.
type UpdateTreatmentParams struct {
	ApiaryID        *int64  `json:"apiary_id"          validate:"omitempty,gt=0"`
	ApplyToAllHives *bool   `json:"apply_to_all_hives"`
	HiveID          *int64  `json:"hive_id"            validate:"omitempty,gt=0"`
	StartDate       *string `json:"start_date"         validate:"omitempty,isodate"`
	TreatmentFields
}

// TreatmentService manages treatments.
type TreatmentService interface {
	// Create stores one treatment, or one per hive of the apiary when
	// apply_to_all_hives is set.
	Create(ctx context.Context, params CreateTreatmentParams) ([]*domain.Treatment, error)
	Get(ctx context.Context, id int64) (*domain.Treatment, error)
	List(ctx context.Context, filter store.TreatmentFilter) ([]domain.Treatment, error)
	Update(ctx context.Context, id int64, params UpdateTreatmentParams) (*domain.Treatment, error)
	Delete(ctx context.Context, id int64) error
}

type treatmentServiceImpl struct {
	*hiveRecordService[domain.Treatment, *domain.Treatment, store.TreatmentFilter, store.TreatmentStore]
}

// NewTreatmentService creates a TreatmentService.
func NewTreatmentService(
	db *gorm.DB,
	apiaries store.ApiaryStore,
	hives store.HiveStore,
	treatments store.TreatmentStore,
	logger *slog.Logger,
) (TreatmentService, error) {
	if db == nil || apiaries == nil || hives == nil || treatments == nil {
		return nil, domain.NewValidationError("dependencies", "cannot be nil", domain.ErrValidation)
	}
	return &treatmentServiceImpl{
		newHiveRecordService[domain.Treatment, *domain.Treatment, store.TreatmentFilter](
			db, apiaries, hives, treatments, "treatment", logger),
	}, nil
}

// Create implements TreatmentService.Create.
func (s *treatmentServiceImpl) Create(
	ctx context.Context,
	params CreateTreatmentParams,
) ([]*domain.Treatment, error) {
	treatment, err := params.treatment()
	if err != nil {
		return nil, err
	}
	return s.create(ctx, treatment)
}

// Get implements TreatmentService.Get.
func (s *treatmentServiceImpl) Get(ctx context.Context, id int64) (*domain.Treatment, error) {
	return s.get(ctx, id)
}

// List implements TreatmentService.List.
func (s *treatmentServiceImpl) List(
	ctx context.Context,
	filter store.TreatmentFilter,
) ([]domain.Treatment, error) {
	return s.list(ctx, filter)
}

// Update implements TreatmentService.Update.
// The resulting start and end dates must still form a valid range.
func (s *treatmentServiceImpl) Update(
	ctx context.Context,
	id int64,
	params UpdateTreatmentParams,
) (*domain.Treatment, error) {
	start, err := parseOptionalDate("start_date", params.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("end_date", params.EndDate)
	if err != nil {
		return nil, err
	}

	fields := store.Fields{}
	store.Set(fields, "apply_to_all_hives", params.ApplyToAllHives)
	store.Set(fields, "start_date", start)
	store.Set(fields, "end_date", end)
	params.TreatmentFields.collect(fields)

	checkRange := func(existing *domain.Treatment) error {
		effectiveStart := existing.StartDate
		if start != nil {
			effectiveStart = *start
		}
		effectiveEnd := existing.EndDate
		if end != nil {
			effectiveEnd = end
		}
		return checkDateRange(effectiveStart, effectiveEnd)
	}
	return s.update(ctx, id, params.ApiaryID, params.HiveID, fields, checkRange)
}

// Delete implements TreatmentService.Delete.
func (s *treatmentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}
