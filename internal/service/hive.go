package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// ColonyInfoParams describes the colony condition of a hive.
type ColonyInfoParams struct {
	Strength         *int    `json:"strength"          validate:"omitempty,min=0,max=100"`
	StrengthCategory *string `json:"strength_category" validate:"omitempty,max=50"`
	Temperament      *string `json:"temperament"       validate:"omitempty,max=50"`
	SupersCount      *int    `json:"supers_count"      validate:"omitempty,min=0"`
	FramesCount      *int    `json:"frames_count"      validate:"omitempty,min=0"`
}

func (p *ColonyInfoParams) build(hiveID int64) (*domain.HiveColonyInfo, []string) {
	f := store.Fields{}
	store.Set(f, "strength", p.Strength)
	store.Set(f, "strength_category", p.StrengthCategory)
	store.Set(f, "temperament", p.Temperament)
	store.Set(f, "supers_count", p.SupersCount)
	store.Set(f, "frames_count", p.FramesCount)
	return &domain.HiveColonyInfo{
		HiveID:           hiveID,
		Strength:         p.Strength,
		StrengthCategory: p.StrengthCategory,
		Temperament:      p.Temperament,
		SupersCount:      p.SupersCount,
		FramesCount:      p.FramesCount,
	}, f.Columns()
}

// QueenInfoParams describes the queen heading a hive.
type QueenInfoParams struct {
	HasQueen           *bool   `json:"has_queen"`
	QueenStatus        *string `json:"queen_status"         validate:"omitempty,max=50"`
	QueenID            *string `json:"queen_id"             validate:"omitempty,max=100"`
	QueenHatchedYear   *int    `json:"queen_hatched_year"   validate:"omitempty,min=1900,notfutureyear"`
	QueenInstalledDate *string `json:"queen_installed_date" validate:"omitempty,isodate"`
	QueenState         *string `json:"queen_state"          validate:"omitempty,max=50"`
	QueenRace          *string `json:"queen_race"           validate:"omitempty,max=50"`
	QueenClipped       *bool   `json:"queen_clipped"`
	QueenMarked        *bool   `json:"queen_marked"`
	QueenNote          *string `json:"queen_note"           validate:"omitempty,max=1000"`
	QueenOrigin        *string `json:"queen_origin"         validate:"omitempty,max=100"`
}

func (p *QueenInfoParams) build(hiveID int64) (*domain.HiveQueen, []string, error) {
	installed, err := parseOptionalDate("queen_info.queen_installed_date", p.QueenInstalledDate)
	if err != nil {
		return nil, nil, err
	}
	f := store.Fields{}
	store.Set(f, "has_queen", p.HasQueen)
	store.Set(f, "queen_status", p.QueenStatus)
	store.Set(f, "queen_id", p.QueenID)
	store.Set(f, "queen_hatched_year", p.QueenHatchedYear)
	store.Set(f, "queen_installed_date", installed)
	store.Set(f, "queen_state", p.QueenState)
	store.Set(f, "queen_race", p.QueenRace)
	store.Set(f, "queen_clipped", p.QueenClipped)
	store.Set(f, "queen_marked", p.QueenMarked)
	store.Set(f, "queen_note", p.QueenNote)
	store.Set(f, "queen_origin", p.QueenOrigin)
	return &domain.HiveQueen{
		HiveID:             hiveID,
		HasQueen:           p.HasQueen,
		QueenStatus:        p.QueenStatus,
		QueenID:            p.QueenID,
		QueenHatchedYear:   p.QueenHatchedYear,
		QueenInstalledDate: installed,
		QueenState:         p.QueenState,
		QueenRace:          p.QueenRace,
		QueenClipped:       p.QueenClipped,
		QueenMarked:        p.QueenMarked,
		QueenNote:          p.QueenNote,
		QueenOrigin:        p.QueenOrigin,
	}, f.Columns(), nil
}

// HiveFields are the optional hive attributes shared by create and update.
type HiveFields struct {
	Status         *string             `json:"status"          validate:"omitempty,max=100"`
	HiveIdentifier *string             `json:"hive_identifier" validate:"omitempty,max=100"`
	Color          *string             `json:"color"           validate:"omitempty,max=50"`
	Type           *domain.HiveType    `json:"type"            validate:"omitempty,oneof=LANGSTROTH TOP_BAR WARRE FLOW NATIONAL COMMERCIAL OTHER"`
	Source         *string             `json:"source"          validate:"omitempty,max=100"`
	Purpose        *domain.HivePurpose `json:"purpose"         validate:"omitempty,oneof=HONEY_PRODUCTION POLLINATION QUEEN_BREEDING NUC_PRODUCTION RESEARCH EDUCATION CONSERVATION OTHER"`
	CreatedDate    *string             `json:"created_date"    validate:"omitempty,isodate"`
	Note           *string             `json:"note"            validate:"omitempty,max=2000"`
	ColonyInfo     *ColonyInfoParams   `json:"colony_info"`
	QueenInfo      *QueenInfoParams    `json:"queen_info"`
}

func (f HiveFields) apply(h *domain.Hive) error {
	created, err := parseOptionalDate("created_date", f.CreatedDate)
	if err != nil {
		return err
	}
	h.Status = f.Status
	h.HiveIdentifier = f.HiveIdentifier
	h.Color = f.Color
	h.Type = f.Type
	h.Source = f.Source
	h.Purpose = f.Purpose
	h.CreatedDate = created
	h.Note = f.Note
	return nil
}

func (f HiveFields) collect(out store.Fields) error {
	created, err := parseOptionalDate("created_date", f.CreatedDate)
	if err != nil {
		return err
	}
	store.Set(out, "status", f.Status)
	store.Set(out, "hive_identifier", f.HiveIdentifier)
	store.Set(out, "color", f.Color)
	store.Set(out, "type", f.Type)
	store.Set(out, "source", f.Source)
	store.Set(out, "purpose", f.Purpose)
	store.Set(out, "created_date", created)
	store.Set(out, "note", f.Note)
	return nil
}

// CreateHiveParams is the body of a hive create request.
type CreateHiveParams struct {
	ApiaryID int64 `json:"apiary_id" validate:"required,gt=0"`
	HiveFields
}

// UpdateHiveParams is the body of a hive update request.
type UpdateHiveParams struct {
	ApiaryID *int64 `json:"apiary_id" validate:"omitempty,gt=0"`
	HiveFields
}

// HiveService manages hives with their colony and queen details.
type HiveService interface {
	Create(ctx context.Context, params CreateHiveParams) (*domain.Hive, error)
	Get(ctx context.Context, id int64) (*domain.Hive, error)
	List(ctx context.Context, filter store.HiveFilter) ([]domain.Hive, error)
	Update(ctx context.Context, id int64, params UpdateHiveParams) (*domain.Hive, error)
	Delete(ctx context.Context, id int64) error
}

type hiveServiceImpl struct {
	db     *gorm.DB
	hives  store.HiveStore
	refs   references
	logger *slog.Logger
}

// NewHiveService creates a HiveService.
func NewHiveService(
	db *gorm.DB,
	apiaries store.ApiaryStore,
	hives store.HiveStore,
	logger *slog.Logger,
) (HiveService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if apiaries == nil {
		return nil, domain.NewValidationError("apiaries", "cannot be nil", domain.ErrValidation)
	}
	if hives == nil {
		return nil, domain.NewValidationError("hives", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &hiveServiceImpl{
		db:     db,
		hives:  hives,
		refs:   references{apiaries: apiaries, hives: hives},
		logger: logger.With(slog.String("component", "hive_service")),
	}, nil
}

// Create implements HiveService.Create.
// The hive and its colony and queen rows are written in one transaction.
func (s *hiveServiceImpl) Create(ctx context.Context, params CreateHiveParams) (*domain.Hive, error) {
	if err := s.refs.requireApiary(ctx, params.ApiaryID); err != nil {
		return nil, NewServiceError("create_hive", "apiary lookup failed", err)
	}

	hive := &domain.Hive{ApiaryID: params.ApiaryID}
	if err := params.HiveFields.apply(hive); err != nil {
		return nil, err
	}
	if params.ColonyInfo != nil {
		hive.ColonyInfo, _ = params.ColonyInfo.build(0)
	}
	if params.QueenInfo != nil {
		queen, _, err := params.QueenInfo.build(0)
		if err != nil {
			return nil, err
		}
		hive.QueenInfo = queen
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		return s.hives.WithTx(tx).Create(ctx, hive)
	})
	if err != nil {
		return nil, NewServiceError("create_hive", "failed to save hive", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("hive created",
		slog.Int64("hive_id", hive.ID),
		slog.Int64("apiary_id", hive.ApiaryID))
	return s.Get(ctx, hive.ID)
}

// Get implements HiveService.Get.
func (s *hiveServiceImpl) Get(ctx context.Context, id int64) (*domain.Hive, error) {
	hive, err := s.hives.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_hive", "failed to retrieve hive", err)
	}
	return hive, nil
}

// List implements HiveService.List.
func (s *hiveServiceImpl) List(ctx context.Context, filter store.HiveFilter) ([]domain.Hive, error) {
	hives, err := s.hives.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("list_hives", "failed to list hives", err)
	}
	return hives, nil
}

// Update implements HiveService.Update.
// Colony and queen details that are present are upserted with the hive.
// Moving the hive to another apiary moves its inspections, tasks and hive
// records with it.
func (s *hiveServiceImpl) Update(ctx context.Context, id int64, params UpdateHiveParams) (*domain.Hive, error) {
	if params.ApiaryID != nil {
		if err := s.refs.requireApiary(ctx, *params.ApiaryID); err != nil {
			return nil, NewServiceError("update_hive", "apiary lookup failed", err)
		}
	}

	fields := store.Fields{}
	store.Set(fields, "apiary_id", params.ApiaryID)
	if err := params.HiveFields.collect(fields); err != nil {
		return nil, err
	}

	var queen *domain.HiveQueen
	var queenColumns []string
	if params.QueenInfo != nil {
		var err error
		if queen, queenColumns, err = params.QueenInfo.build(id); err != nil {
			return nil, err
		}
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		hives := s.hives.WithTx(tx)
		if err := hives.Update(ctx, id, fields); err != nil {
			return err
		}
		if params.ApiaryID != nil {
			if err := hives.MoveRecords(ctx, id, *params.ApiaryID); err != nil {
				return err
			}
		}
		if params.ColonyInfo != nil {
			info, columns := params.ColonyInfo.build(id)
			if err := hives.UpsertColonyInfo(ctx, info, columns); err != nil {
				return err
			}
		}
		if queen != nil {
			if err := hives.UpsertQueen(ctx, queen, queenColumns); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, NewServiceError("update_hive", "failed to update hive", err)
	}
	return s.Get(ctx, id)
}

// Delete implements HiveService.Delete.
// Records that reference the hive are removed with it.
func (s *hiveServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.hives.Delete(ctx, id); err != nil {
		return NewServiceError("delete_hive", "failed to delete hive", err)
	}
	return nil
}
