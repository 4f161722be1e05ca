package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// HarvestFields are the optional harvest attributes shared by create and update.
type HarvestFields struct {
	Scope         *string                `json:"scope"          validate:"omitempty,max=50"`
	Name          *string                `json:"name"           validate:"omitempty,max=100"`
	ProductType   *domain.HarvestProduct `json:"product_type"   validate:"omitempty,oneof=HONEY WAX PROPOLIS POLLEN ROYAL_JELLY BEE_BREAD COMB_HONEY OTHER"`
	Variety       *string                `json:"variety"        validate:"omitempty,max=100"`
	TotalQuantity *float64               `json:"total_quantity" validate:"omitempty,min=0"`
	Unit          *domain.HarvestUnit    `json:"unit"           validate:"omitempty,oneof=kg lb g oz"`
	Notes         *string                `json:"notes"          validate:"omitempty,max=500"`
}

func (f HarvestFields) collect(out store.Fields) {
	store.Set(out, "scope", f.Scope)
	store.Set(out, "name", f.Name)
	store.Set(out, "product_type", f.ProductType)
	store.Set(out, "variety", f.Variety)
	store.Set(out, "total_quantity", f.TotalQuantity)
	store.Set(out, "unit", f.Unit)
	store.Set(out, "notes", f.Notes)
}

// CreateHarvestParams is the body of a harvest create request.
type CreateHarvestParams struct {
	ApiaryID        int64  `json:"apiary_id"          validate:"required,gt=0"`
	ApplyToAllHives bool   `json:"apply_to_all_hives"`
	HiveID          *int64 `json:"hive_id"            validate:"omitempty,gt=0"`
	HarvestDate     string `json:"harvest_date"       validate:"required,isodate"`
	HarvestFields
}

func (p CreateHarvestParams) harvest() (*domain.Harvest, error) {
	date, err := parseDate("harvest_date", p.HarvestDate)
	if err != nil {
		return nil, err
	}
	return &domain.Harvest{
		Scope:           p.Scope,
		ApiaryID:        p.ApiaryID,
		ApplyToAllHives: p.ApplyToAllHives,
		HiveID:          p.HiveID,
		Name:            p.Name,
		HarvestDate:     date,
		ProductType:     p.ProductType,
		Variety:         p.Variety,
		TotalQuantity:   p.TotalQuantity,
		Unit:            p.Unit,
		Notes:           p.Notes,
	}, nil
}

// UpdateHarvestParams is the body of a harvest update request.
type UpdateHarvestParams struct {
	ApiaryID        *int64  `json:"apiary_id"          validate:"omitempty,gt=0"`
	ApplyToAllHives *bool   `json:"apply_to_all_hives"`
	HiveID          *int64  `json:"hive_id"            validate:"omitempty,gt=0"`
	HarvestDate     *string `json:"harvest_date"       validate:"omitempty,isodate"`
	HarvestFields
}

// HarvestService manages harvests.
type HarvestService interface {
	// Create stores one harvest, or one per hive of the apiary when
	// apply_to_all_hives is set.
	Create(ctx context.Context, params CreateHarvestParams) ([]*domain.Harvest, error)
	Get(ctx context.Context, id int64) (*domain.Harvest, error)
	List(ctx context.Context, filter store.HarvestFilter) ([]domain.Harvest, error)
	Update(ctx context.Context, id int64, params UpdateHarvestParams) (*domain.Harvest, error)
	Delete(ctx context.Context, id int64) error
}

type harvestServiceImpl struct {
	*hiveRecordService[domain.Harvest, *domain.Harvest, store.HarvestFilter, store.HarvestStore]
}

// NewHarvestService creates a HarvestService.
func NewHarvestService(
	db *gorm.DB,
	apiaries store.ApiaryStore,
	hives store.HiveStore,
	harvests store.HarvestStore,
	logger *slog.Logger,
) (HarvestService, error) {
	if db == nil || apiaries == nil || hives == nil || harvests == nil {
		return nil, domain.NewValidationError("dependencies", "cannot be nil", domain.ErrValidation)
	}
	return &harvestServiceImpl{
		newHiveRecordService[domain.Harvest, *domain.Harvest, store.HarvestFilter](
			db, apiaries, hives, harvests, "harvest", logger),
	}, nil
}

// Create implements HarvestService.Create.
func (s *harvestServiceImpl) Create(ctx context.Context, params CreateHarvestParams) ([]*domain.Harvest, error) {
	harvest, err := params.harvest()
	if err != nil {
		return nil, err
	}
	return s.create(ctx, harvest)
}

// Get implements HarvestService.Get.
func (s *harvestServiceImpl) Get(ctx context.Context, id int64) (*domain.Harvest, error) {
	return s.get(ctx, id)
}

// List implements HarvestService.List.
func (s *harvestServiceImpl) List(ctx context.Context, filter store.HarvestFilter) ([]domain.Harvest, error) {
	return s.list(ctx, filter)
}

// Update implements HarvestService.Update.
func (s *harvestServiceImpl) Update(
	ctx context.Context,
	id int64,
	params UpdateHarvestParams,
) (*domain.Harvest, error) {
	date, err := parseOptionalDate("harvest_date", params.HarvestDate)
	if err != nil {
		return nil, err
	}
	fields := store.Fields{}
	store.Set(fields, "apply_to_all_hives", params.ApplyToAllHives)
	store.Set(fields, "harvest_date", date)
	params.HarvestFields.collect(fields)
	return s.update(ctx, id, params.ApiaryID, params.HiveID, fields, nil)
}

// Delete implements HarvestService.Delete.
func (s *harvestServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}
