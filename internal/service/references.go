package service

import (
	"context"

	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
)

// references performs the existence and ownership checks shared by services.
type references struct {
	apiaries store.ApiaryStore
	hives    store.HiveStore
}

// requireApiary returns store.ErrApiaryNotFound if the apiary does not exist.
func (r references) requireApiary(ctx context.Context, apiaryID int64) error {
	_, err := r.apiaries.GetByID(ctx, apiaryID)
	return err
}

// requireHive returns the hive or store.ErrHiveNotFound.
func (r references) requireHive(ctx context.Context, hiveID int64) (*domain.Hive, error) {
	return r.hives.GetByID(ctx, hiveID)
}

// requireHiveInApiary checks that the hive exists and belongs to apiaryID.
func (r references) requireHiveInApiary(ctx context.Context, hiveID, apiaryID int64) error {
	hive, err := r.requireHive(ctx, hiveID)
	if err != nil {
		return err
	}
	if hive.ApiaryID != apiaryID {
		return ErrHiveNotInApiary
	}
	return nil
}

// checkPair validates a partial update of an apiary/hive pair.
// Given ids must exist. When either id is given, the effective pair (given
// value, else the stored one) must satisfy hive.apiary_id == apiary_id.
func (r references) checkPair(
	ctx context.Context,
	apiaryID, hiveID *int64,
	storedApiaryID int64,
	storedHiveID *int64,
) error {
	if apiaryID == nil && hiveID == nil {
		return nil
	}
	effectiveApiary := storedApiaryID
	if apiaryID != nil {
		if err := r.requireApiary(ctx, *apiaryID); err != nil {
			return err
		}
		effectiveApiary = *apiaryID
	}

	effectiveHive := storedHiveID
	if hiveID != nil {
		effectiveHive = hiveID
	}
	if effectiveHive == nil {
		return nil
	}
	return r.requireHiveInApiary(ctx, *effectiveHive, effectiveApiary)
}
