package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/store"
)

// ApiaryFields are the optional apiary attributes shared by create and update.
type ApiaryFields struct {
	Forages     *string             `json:"forages"      validate:"omitempty,max=200"`
	Type        *domain.ApiaryType  `json:"type"         validate:"omitempty,oneof=COMMERCIAL HOBBY RESEARCH EDUCATIONAL OTHER"`
	SunExposure *domain.SunExposure `json:"sun_exposure" validate:"omitempty,oneof=FULL_SUN PARTIAL_SUN SHADE PARTIAL_SHADE"`
	Description *string             `json:"description"  validate:"omitempty,max=500"`
	Address     *string             `json:"address"      validate:"omitempty,max=200"`
	Zip         *string             `json:"zip"          validate:"omitempty,max=20"`
	City        *string             `json:"city"         validate:"omitempty,max=100"`
	State       *string             `json:"state"        validate:"omitempty,max=100"`
	Country     *string             `json:"country"      validate:"omitempty,max=100"`
	Latitude    *float64            `json:"latitude"     validate:"omitempty,min=-90,max=90"`
	Longitude   *float64            `json:"longitude"    validate:"omitempty,min=-180,max=180"`
}

func (f ApiaryFields) apply(a *domain.Apiary) {
	a.Forages = f.Forages
	a.Type = f.Type
	a.SunExposure = f.SunExposure
	a.Description = f.Description
	a.Address = f.Address
	a.Zip = f.Zip
	a.City = f.City
	a.State = f.State
	a.Country = f.Country
	a.Latitude = f.Latitude
	a.Longitude = f.Longitude
}

func (f ApiaryFields) collect(out store.Fields) {
	store.Set(out, "forages", f.Forages)
	store.Set(out, "type", f.Type)
	store.Set(out, "sun_exposure", f.SunExposure)
	store.Set(out, "description", f.Description)
	store.Set(out, "address", f.Address)
	store.Set(out, "zip", f.Zip)
	store.Set(out, "city", f.City)
	store.Set(out, "state", f.State)
	store.Set(out, "country", f.Country)
	store.Set(out, "latitude", f.Latitude)
	store.Set(out, "longitude", f.Longitude)
}

// CreateApiaryParams is the body of an apiary create request.
type CreateApiaryParams struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	ApiaryFields
}

// UpdateApiaryParams is the body of an apiary update request.
// Only the fields that are present are changed.
type UpdateApiaryParams struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
	ApiaryFields
}

// Fields returns the columns to update.
func (p UpdateApiaryParams) Fields() store.Fields {
	f := store.Fields{}
	store.Set(f, "name", p.Name)
	p.ApiaryFields.collect(f)
	return f
}

// ApiaryService manages apiaries.
type ApiaryService interface {
	Create(ctx context.Context, params CreateApiaryParams) (*domain.Apiary, error)
	Get(ctx context.Context, id int64) (*domain.Apiary, error)
	List(ctx context.Context, filter store.ApiaryFilter) ([]domain.Apiary, error)
	Update(ctx context.Context, id int64, params UpdateApiaryParams) (*domain.Apiary, error)
	Delete(ctx context.Context, id int64) error
}

type apiaryServiceImpl struct {
	apiaries store.ApiaryStore
	logger   *slog.Logger
}

// NewApiaryService creates an ApiaryService.
// It returns an error if the store is nil.
func NewApiaryService(apiaries store.ApiaryStore, logger *slog.Logger) (ApiaryService, error) {
	if apiaries == nil {
		return nil, domain.NewValidationError("apiaries", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &apiaryServiceImpl{
		apiaries: apiaries,
		logger:   logger.With(slog.String("component", "apiary_service")),
	}, nil
}

// Create implements ApiaryService.Create.
func (s *apiaryServiceImpl) Create(ctx context.Context, params CreateApiaryParams) (*domain.Apiary, error) {
	apiary := &domain.Apiary{Name: params.Name}
	params.ApiaryFields.apply(apiary)

	if err := s.apiaries.Create(ctx, apiary); err != nil {
		return nil, NewServiceError("create_apiary", "failed to save apiary", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("apiary created",
		slog.Int64("apiary_id", apiary.ID))
	return s.Get(ctx, apiary.ID)
}

// Get implements ApiaryService.Get.
func (s *apiaryServiceImpl) Get(ctx context.Context, id int64) (*domain.Apiary, error) {
	apiary, err := s.apiaries.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_apiary", "failed to retrieve apiary", err)
	}
	return apiary, nil
}

// List implements ApiaryService.List.
func (s *apiaryServiceImpl) List(ctx context.Context, filter store.ApiaryFilter) ([]domain.Apiary, error) {
	apiaries, err := s.apiaries.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("list_apiaries", "failed to list apiaries", err)
	}
	return apiaries, nil
}

// Update implements ApiaryService.Update.
func (s *apiaryServiceImpl) Update(
	ctx context.Context,
	id int64,
	params UpdateApiaryParams,
) (*domain.Apiary, error) {
	if err := s.apiaries.Update(ctx, id, params.Fields()); err != nil {
		return nil, NewServiceError("update_apiary", "failed to update apiary", err)
	}
	return s.Get(ctx, id)
}

// Delete implements ApiaryService.Delete.
// Hives and every record of the apiary are removed with it.
func (s *apiaryServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.apiaries.Delete(ctx, id); err != nil {
		return NewServiceError("delete_apiary", "failed to delete apiary", err)
	}
	return nil
}
