package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// InspectionFields are the optional inspection attributes and detail
// sections shared by create and update.
type InspectionFields struct {
	Name              *string                  `json:"name"               validate:"omitempty,max=100"`
	InspectionTime    *string                  `json:"inspection_time"    validate:"omitempty,max=50"`
	Strength          *int                     `json:"strength"           validate:"omitempty,min=0,max=100"`
	StrengthCategory  *domain.StrengthCategory `json:"strength_category"  validate:"omitempty,oneof=VERY_WEAK WEAK MODERATE STRONG VERY_STRONG"`
	Temperament       *domain.Temperament      `json:"temperament"        validate:"omitempty,oneof=CALM NORMAL NERVOUS AGGRESSIVE DEFENSIVE"`
	SupersCount       *int                     `json:"supers_count"       validate:"omitempty,min=0"`
	FramesCount       *int                     `json:"frames_count"       validate:"omitempty,min=0"`
	Notes             *string                  `json:"notes"              validate:"omitempty,max=500"`
	Weight            *float64                 `json:"weight"             validate:"omitempty,min=0"`
	WeightUnit        *domain.WeightUnit       `json:"weight_unit"        validate:"omitempty,oneof=kg lb"`
	IncludeWeather    *bool                    `json:"include_weather"`
	WeatherConditions *string                  `json:"weather_conditions" validate:"omitempty,max=200"`
	Temperature       *float64                 `json:"temperature"        validate:"omitempty,min=-50,max=50"`

	Queen      *InspectionQueenParams      `json:"queen"`
	Brood      *InspectionBroodParams      `json:"brood"`
	Conditions *InspectionConditionsParams `json:"conditions"`
	Frames     *InspectionFramesParams     `json:"frames"`
	Activities *InspectionActivitiesParams `json:"activities"`
	Problems   *InspectionProblemsParams   `json:"problems"`
	Treatments *InspectionTreatmentsParams `json:"treatments"`
}

func (f InspectionFields) apply(i *domain.Inspection) {
	i.Name = f.Name
	i.InspectionTime = f.InspectionTime
	i.Strength = f.Strength
	i.StrengthCategory = f.StrengthCategory
	i.Temperament = f.Temperament
	i.SupersCount = f.SupersCount
	i.FramesCount = f.FramesCount
	i.Notes = f.Notes
	i.Weight = f.Weight
	i.WeightUnit = f.WeightUnit
	i.IncludeWeather = f.IncludeWeather
	i.WeatherConditions = f.WeatherConditions
	i.Temperature = f.Temperature
}

func (f InspectionFields) collect(out store.Fields) {
	store.Set(out, "name", f.Name)
	store.Set(out, "inspection_time", f.InspectionTime)
	store.Set(out, "strength", f.Strength)
	store.Set(out, "strength_category", f.StrengthCategory)
	store.Set(out, "temperament", f.Temperament)
	store.Set(out, "supers_count", f.SupersCount)
	store.Set(out, "frames_count", f.FramesCount)
	store.Set(out, "notes", f.Notes)
	store.Set(out, "weight", f.Weight)
	store.Set(out, "weight_unit", f.WeightUnit)
	store.Set(out, "include_weather", f.IncludeWeather)
	store.Set(out, "weather_conditions", f.WeatherConditions)
	store.Set(out, "temperature", f.Temperature)
}

// sections returns the detail sections present in the request.
func (f InspectionFields) sections() []section {
	var out []section
	if f.Queen != nil {
		out = append(out, f.Queen)
	}
	if f.Brood != nil {
		out = append(out, f.Brood)
	}
	if f.Conditions != nil {
		out = append(out, f.Conditions)
	}
	if f.Frames != nil {
		out = append(out, f.Frames)
	}
	if f.Activities != nil {
		out = append(out, f.Activities)
	}
	if f.Problems != nil {
		out = append(out, f.Problems)
	}
	if f.Treatments != nil {
		out = append(out, f.Treatments)
	}
	return out
}

// colonyInfo returns the colony observations of the request, or nil when
// none were recorded.
func (f InspectionFields) colonyInfo() *ColonyInfoParams {
	probe := domain.Inspection{
		Strength:         f.Strength,
		StrengthCategory: f.StrengthCategory,
		Temperament:      f.Temperament,
		SupersCount:      f.SupersCount,
		FramesCount:      f.FramesCount,
	}
	if !probe.HasColonyObservation() {
		return nil
	}
	return &ColonyInfoParams{
		Strength:         f.Strength,
		StrengthCategory: (*string)(f.StrengthCategory),
		Temperament:      (*string)(f.Temperament),
		SupersCount:      f.SupersCount,
		FramesCount:      f.FramesCount,
	}
}

// CreateInspectionParams is the body of an inspection create request.
type CreateInspectionParams struct {
	ApiaryID       int64  `json:"apiary_id"       validate:"required,gt=0"`
	HiveID         int64  `json:"hive_id"         validate:"required,gt=0"`
	InspectionDate string `json:"inspection_date" validate:"required,isodate"`
	InspectionFields
}

// UpdateInspectionParams is the body of an inspection update request.
type UpdateInspectionParams struct {
	ApiaryID       *int64  `json:"apiary_id"       validate:"omitempty,gt=0"`
	HiveID         *int64  `json:"hive_id"         validate:"omitempty,gt=0"`
	InspectionDate *string `json:"inspection_date" validate:"omitempty,isodate"`
	InspectionFields
}

// InspectionService manages inspections and their detail sections.
type InspectionService interface {
	Create(ctx context.Context, params CreateInspectionParams) (*domain.Inspection, error)
	Get(ctx context.Context, id int64) (*domain.Inspection, error)
	List(ctx context.Context, filter store.InspectionFilter) ([]domain.Inspection, error)
	Update(ctx context.Context, id int64, params UpdateInspectionParams) (*domain.Inspection, error)
	Delete(ctx context.Context, id int64) error
}

type inspectionServiceImpl struct {
	db          *gorm.DB
	inspections store.InspectionStore
	hives       store.HiveStore
	refs        references
	logger      *slog.Logger
}

// NewInspectionService creates an InspectionService.
func NewInspectionService(
	db *gorm.DB,
	apiaries store.ApiaryStore,
	hives store.HiveStore,
	inspections store.InspectionStore,
	logger *slog.Logger,
) (InspectionService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if apiaries == nil || hives == nil || inspections == nil {
		return nil, domain.NewValidationError("stores", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &inspectionServiceImpl{
		db:          db,
		inspections: inspections,
		hives:       hives,
		refs:        references{apiaries: apiaries, hives: hives},
		logger:      logger.With(slog.String("component", "inspection_service")),
	}, nil
}

// writeDetails upserts the provided sections of inspectionID and, when colony
// values were observed, the colony info of hiveID.
func writeDetails(
	ctx context.Context,
	inspections store.InspectionStore,
	hives store.HiveStore,
	inspectionID, hiveID int64,
	fields InspectionFields,
) error {
	for _, sec := range fields.sections() {
		detail, columns := sec.build(inspectionID)
		if err := inspections.UpsertDetail(ctx, detail, columns); err != nil {
			return err
		}
	}
	if colony := fields.colonyInfo(); colony != nil {
		info, columns := colony.build(hiveID)
		if err := hives.UpsertColonyInfo(ctx, info, columns); err != nil {
			return err
		}
	}
	return nil
}

// Create implements InspectionService.Create.
// The inspection, its sections and the colony info update share one transaction.
func (s *inspectionServiceImpl) Create(
	ctx context.Context,
	params CreateInspectionParams,
) (*domain.Inspection, error) {
	if err := s.refs.requireApiary(ctx, params.ApiaryID); err != nil {
		return nil, NewServiceError("create_inspection", "apiary lookup failed", err)
	}
	if err := s.refs.requireHiveInApiary(ctx, params.HiveID, params.ApiaryID); err != nil {
		return nil, NewServiceError("create_inspection", "hive lookup failed", err)
	}

	date, err := parseDate("inspection_date", params.InspectionDate)
	if err != nil {
		return nil, err
	}
	inspection := &domain.Inspection{
		ApiaryID:       params.ApiaryID,
		HiveID:         params.HiveID,
		InspectionDate: date,
	}
	params.InspectionFields.apply(inspection)

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		inspections := s.inspections.WithTx(tx)
		if err := inspections.Create(ctx, inspection); err != nil {
			return err
		}
		return writeDetails(ctx, inspections, s.hives.WithTx(tx),
			inspection.ID, inspection.HiveID, params.InspectionFields)
	})
	if err != nil {
		return nil, NewServiceError("create_inspection", "failed to save inspection", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("inspection created",
		slog.Int64("inspection_id", inspection.ID),
		slog.Int64("hive_id", inspection.HiveID))
	return s.Get(ctx, inspection.ID)
}

// Get implements InspectionService.Get.
func (s *inspectionServiceImpl) Get(ctx context.Context, id int64) (*domain.Inspection, error) {
	inspection, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_inspection", "failed to retrieve inspection", err)
	}
	return inspection, nil
}

// List implements InspectionService.List.
func (s *inspectionServiceImpl) List(
	ctx context.Context,
	filter store.InspectionFilter,
) ([]domain.Inspection, error) {
	inspections, err := s.inspections.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("list_inspections", "failed to list inspections", err)
	}
	return inspections, nil
}

// Update implements InspectionService.Update.
func (s *inspectionServiceImpl) Update(
	ctx context.Context,
	id int64,
	params UpdateInspectionParams,
) (*domain.Inspection, error) {
	existing, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("update_inspection", "failed to retrieve inspection", err)
	}
	if err := s.refs.checkPair(ctx, params.ApiaryID, params.HiveID, existing.ApiaryID, &existing.HiveID); err != nil {
		return nil, NewServiceError("update_inspection", "reference check failed", err)
	}

	date, err := parseOptionalDate("inspection_date", params.InspectionDate)
	if err != nil {
		return nil, err
	}
	fields := store.Fields{}
	store.Set(fields, "apiary_id", params.ApiaryID)
	store.Set(fields, "hive_id", params.HiveID)
	store.Set(fields, "inspection_date", date)
	params.InspectionFields.collect(fields)

	hiveID := existing.HiveID
	if params.HiveID != nil {
		hiveID = *params.HiveID
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		inspections := s.inspections.WithTx(tx)
		if err := inspections.Update(ctx, id, fields); err != nil {
			return err
		}
		return writeDetails(ctx, inspections, s.hives.WithTx(tx), id, hiveID, params.InspectionFields)
	})
	if err != nil {
		return nil, NewServiceError("update_inspection", "failed to update inspection", err)
	}
	return s.Get(ctx, id)
}

// Delete implements InspectionService.Delete.
func (s *inspectionServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.inspections.Delete(ctx, id); err != nil {
		return NewServiceError("delete_inspection", "failed to delete inspection", err)
	}
	return nil
}
