package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"github.com/phrazzld/apiary-api/internal/store"
	"gorm.io/gorm"
)

// hiveRecordStore is the store shape shared by feedings, harvests and treatments.
type hiveRecordStore[T any, F any, S any] interface {
	store.RecordStore[T, F]
	WithTx(tx *gorm.DB) S
}

// hiveRecordService implements create, read, update and delete for records
// logged against a hive, including the apply-to-all-hives fan-out.
type hiveRecordService[
	T any,
	PT interface {
		*T
		domain.HiveRecord
	},
	F any,
	S hiveRecordStore[T, F, S],
] struct {
	db      *gorm.DB
	records S
	refs    references
	entity  string
	logger  *slog.Logger
}

func newHiveRecordService[
	T any,
	PT interface {
		*T
		domain.HiveRecord
	},
	F any,
	S hiveRecordStore[T, F, S],
](
	db *gorm.DB,
	apiaries store.ApiaryStore,
	hives store.HiveStore,
	records S,
	entity string,
	log *slog.Logger,
) *hiveRecordService[T, PT, F, S] {
	if log == nil {
		log = slog.Default()
	}
	return &hiveRecordService[T, PT, F, S]{
		db:      db,
		records: records,
		refs:    references{apiaries: apiaries, hives: hives},
		entity:  entity,
		logger:  log.With(slog.String("component", entity+"_service")),
	}
}

// create writes rec for its hive, or one copy per hive of the apiary when
// rec applies to all hives. The stored records are returned with apiary and
// hive loaded.
func (s *hiveRecordService[T, PT, F, S]) create(ctx context.Context, rec PT) ([]*T, error) {
	op := "create_" + s.entity
	apiaryID := rec.GetApiaryID()
	if err := s.refs.requireApiary(ctx, apiaryID); err != nil {
		return nil, NewServiceError(op, "apiary lookup failed", err)
	}

	var batch []*T
	mode := "single"
	if rec.AppliesToAllHives() {
		mode = "all_hives"
		hives, err := s.refs.hives.List(ctx, store.HiveFilter{ApiaryID: &apiaryID})
		if err != nil {
			return nil, NewServiceError(op, "failed to list hives", err)
		}
		if len(hives) == 0 {
			return nil, ErrNoHivesInApiary
		}
		batch = make([]*T, 0, len(hives))
		for _, hive := range hives {
			clone := new(T)
			*clone = *(*T)(rec)
			PT(clone).AssignHive(hive.ID)
			batch = append(batch, clone)
		}
	} else {
		hiveID := rec.GetHiveID()
		if hiveID == nil {
			return nil, ErrHiveRequired
		}
		if err := s.refs.requireHiveInApiary(ctx, *hiveID, apiaryID); err != nil {
			return nil, NewServiceError(op, "hive lookup failed", err)
		}
		batch = []*T{(*T)(rec)}
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		return s.records.WithTx(tx).Create(ctx, batch...)
	})
	if err != nil {
		return nil, NewServiceError(op, "failed to save records", err)
	}
	hiveRecordsCreated.WithLabelValues(s.entity, mode).Add(float64(len(batch)))

	logger.FromContextOrDefault(ctx, s.logger).Info("records created",
		slog.String("entity", s.entity),
		slog.String("mode", mode),
		slog.Int64("apiary_id", apiaryID),
		slog.Int("count", len(batch)))

	created := make([]*T, 0, len(batch))
	for _, r := range batch {
		stored, err := s.records.GetByID(ctx, PT(r).GetID())
		if err != nil {
			return nil, NewServiceError(op, "failed to reload record", err)
		}
		created = append(created, stored)
	}
	return created, nil
}

func (s *hiveRecordService[T, PT, F, S]) get(ctx context.Context, id int64) (*T, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_"+s.entity, "failed to retrieve record", err)
	}
	return rec, nil
}

func (s *hiveRecordService[T, PT, F, S]) list(ctx context.Context, filter F) ([]T, error) {
	records, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("list_"+s.entity, "failed to list records", err)
	}
	return records, nil
}

// update checks the apiary/hive references of a partial update and writes fields.
// When check is non-nil it is called with the stored record before writing.
func (s *hiveRecordService[T, PT, F, S]) update(
	ctx context.Context,
	id int64,
	apiaryID, hiveID *int64,
	fields store.Fields,
	check func(existing *T) error,
) (*T, error) {
	op := "update_" + s.entity
	existing, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError(op, "failed to retrieve record", err)
	}
	stored := PT(existing)
	if err := s.refs.checkPair(ctx, apiaryID, hiveID, stored.GetApiaryID(), stored.GetHiveID()); err != nil {
		return nil, NewServiceError(op, "reference check failed", err)
	}
	if check != nil {
		if err := check(existing); err != nil {
			return nil, err
		}
	}

	store.Set(fields, "apiary_id", apiaryID)
	store.Set(fields, "hive_id", hiveID)
	if err := s.records.Update(ctx, id, fields); err != nil {
		return nil, NewServiceError(op, "failed to update record", err)
	}
	return s.get(ctx, id)
}

func (s *hiveRecordService[T, PT, F, S]) delete(ctx context.Context, id int64) error {
	if err := s.records.Delete(ctx, id); err != nil {
		return NewServiceError("delete_"+s.entity, "failed to delete record", err)
	}
	return nil
}
