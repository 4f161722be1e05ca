package service_test

import (
	"testing"

	"github.com/phrazzld/apiary-api/internal/platform/postgres"
	"github.com/phrazzld/apiary-api/internal/service"
	"github.com/phrazzld/apiary-api/internal/testutils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// services bundles every service over one in-memory database.
type services struct {
	db          *gorm.DB
	apiaries    service.ApiaryService
	hives       service.HiveService
	inspections service.InspectionService
	tasks       service.TaskService
	feedings    service.FeedingService
	harvests    service.HarvestService
	treatments  service.TreatmentService
}

func newServices(t *testing.T) *services {
	t.Helper()

	db := testutils.NewTestDB(t)
	apiaryStore := postgres.NewPostgresApiaryStore(db, nil)
	hiveStore := postgres.NewPostgresHiveStore(db, nil)

	s := &services{db: db}
	var err error
	s.apiaries, err = service.NewApiaryService(apiaryStore, nil)
	require.NoError(t, err)
	s.hives, err = service.NewHiveService(db, apiaryStore, hiveStore, nil)
	require.NoError(t, err)
	s.inspections, err = service.NewInspectionService(db, apiaryStore, hiveStore,
		postgres.NewPostgresInspectionStore(db, nil), nil)
	require.NoError(t, err)
	s.tasks, err = service.NewTaskService(apiaryStore, hiveStore, postgres.NewPostgresTaskStore(db, nil), nil)
	require.NoError(t, err)
	s.feedings, err = service.NewFeedingService(db, apiaryStore, hiveStore,
		postgres.NewPostgresFeedingStore(db, nil), nil)
	require.NoError(t, err)
	s.harvests, err = service.NewHarvestService(db, apiaryStore, hiveStore,
		postgres.NewPostgresHarvestStore(db, nil), nil)
	require.NoError(t, err)
	s.treatments, err = service.NewTreatmentService(db, apiaryStore, hiveStore,
		postgres.NewPostgresTreatmentStore(db, nil), nil)
	require.NoError(t, err)
	return s
}
