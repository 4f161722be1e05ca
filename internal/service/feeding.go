package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// FeedingFields are the optional feeding attributes shared by create and update.
type FeedingFields struct {
	Name        *string                `json:"name"         validate:"omitempty,max=200"`
	FeedingType *string                `json:"feeding_type" validate:"omitempty,max=100"`
	FoodType    *string                `json:"food_type"    validate:"omitempty,max=100"`
	Ratio       *string                `json:"ratio"        validate:"omitempty,max=50"`
	Note        *string                `json:"note"         validate:"omitempty,max=500"`
	InputAs     *domain.FeedingInputAs `json:"input_as"     validate:"omitempty,oneof=Total 'Per Hive'"`
	Quantity    *float64               `json:"quantity"     validate:"omitempty,min=0"`
	Unit        *string                `json:"unit"         validate:"omitempty,max=20"`
	Notes       *string                `json:"notes"        validate:"omitempty,max=2000"`
}

func (f FeedingFields) collect(out store.Fields) {
	store.Set(out, "name", f.Name)
	store.Set(out, "feeding_type", f.FeedingType)
	store.Set(out, "food_type", f.FoodType)
	store.Set(out, "ratio", f.Ratio)
	store.Set(out, "note", f.Note)
	store.Set(out, "input_as", f.InputAs)
	store.Set(out, "quantity", f.Quantity)
	store.Set(out, "unit", f.Unit)
	store.Set(out, "notes", f.Notes)
}

// CreateFeedingParams is the body of a feeding create request.
type CreateFeedingParams struct {
	ApiaryID        int64  `json:"apiary_id"          validate:"required,gt=0"`
	ApplyToAllHives bool   `json:"apply_to_all_hives"`
	HiveID          *int64 `json:"hive_id"            validate:"omitempty,gt=0"`
	FeedingDate     string `json:"feeding_date"       validate:"required,isodate"`
	FeedingFields
}

func (p CreateFeedingParams) feeding() (*domain.Feeding, error) {
	date, err := parseDate("feeding_date", p.FeedingDate)
	if err != nil {
		return nil, err
	}
	return &domain.Feeding{
		ApiaryID:        p.ApiaryID,
		ApplyToAllHives: p.ApplyToAllHives,
		HiveID:          p.HiveID,
		FeedingDate:     date,
		Name:            p.Name,
		FeedingType:     p.FeedingType,
		FoodType:        p.FoodType,
		Ratio:           p.Ratio,
		Note:            p.Note,
		InputAs:         p.InputAs,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		Notes:           p.Notes,
	}, nil
}

// UpdateFeedingParams is the body of a feeding update request.
type UpdateFeedingParams struct {
	ApiaryID        *int64  `json:"apiary_id"          validate:"omitempty,gt=0"`
	ApplyToAllHives *bool   `json:"apply_to_all_hives"`
	HiveID          *int64  `json:"hive_id"            validate:"omitempty,gt=0"`
	FeedingDate     *string `json:"feeding_date"       validate:"omitempty,isodate"`
	FeedingFields
}

// FeedingService manages feedings.
type FeedingService interface {
	// Create stores one feeding, or one per hive of the apiary when
	// apply_to_all_hives is set.
	Create(ctx context.Context, params CreateFeedingParams) ([]*domain.Feeding, error)
	Get(ctx context.Context, id int64) (*domain.Feeding, error)
	List(ctx context.Context, filter store.FeedingFilter) ([]domain.Feeding, error)
	Update(ctx context.Context, id int64, params UpdateFeedingParams) (*domain.Feeding, error)
	Delete(ctx context.Context, id int64) error
}

type feedingServiceImpl struct {
	*hiveRecordService[domain.Feeding, *domain.Feeding, store.FeedingFilter, store.FeedingStore]
}

// NewFeedingService creates a FeedingService.
func NewFeedingService(
	db *gorm.DB,
	apiaries store.ApiaryStore,
	hives store.HiveStore,
	feedings store.FeedingStore,
	logger *slog.Logger,
) (FeedingService, error) {
	if db == nil || apiaries == nil || hives == nil || feedings == nil {
		return nil, domain.NewValidationError("dependencies", "cannot be nil", domain.ErrValidation)
	}
	return &feedingServiceImpl{
		newHiveRecordService[domain.Feeding, *domain.Feeding, store.FeedingFilter](
			db, apiaries, hives, feedings, "feeding", logger),
	}, nil
}

// Create implements FeedingService.Create.
func (s *feedingServiceImpl) Create(ctx context.Context, params CreateFeedingParams) ([]*domain.Feeding, error) {
	feeding, err := params.feeding()
	if err != nil {
		return nil, err
	}
	return s.create(ctx, feeding)
}

// Get implements FeedingService.Get.
func (s *feedingServiceImpl) Get(ctx context.Context, id int64) (*domain.Feeding, error) {
	return s.get(ctx, id)
}

// List implements FeedingService.List.
func (s *feedingServiceImpl) List(ctx context.Context, filter store.FeedingFilter) ([]domain.Feeding, error) {
	return s.list(ctx, filter)
}

// Update implements FeedingService.Update.
func (s *feedingServiceImpl) Update(
	ctx context.Context,
	id int64,
	params UpdateFeedingParams,
) (*domain.Feeding, error) {
	date, err := parseOptionalDate("feeding_date", params.FeedingDate)
	if err != nil {
		return nil, err
	}
	fields := store.Fields{}
	store.Set(fields, "apply_to_all_hives", params.ApplyToAllHives)
	store.Set(fields, "feeding_date", date)
	params.FeedingFields.collect(fields)
	return s.update(ctx, id, params.ApiaryID, params.HiveID, fields, nil)
}

// Delete implements FeedingService.Delete.
func (s *feedingServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}
