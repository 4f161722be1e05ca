// Package testutils provides shared helpers for tests across the codebase.
//
// Database tests run against an in-memory SQLite database created per test:
//
//	func TestSomething(t *testing.T) {
//	    db := testutils.NewTestDB(t)
//	    apiary := testutils.MustInsertApiary(t, db)
//	    hive := testutils.MustInsertHive(t, db, apiary.ID)
//	    ...
//	}
//
// Helper functions follow these naming conventions:
//   - New*: build a dependency for a test and register its cleanup
//   - MustInsert*: insert an entity, failing the test on error
//   - With*: options for the MustInsert* helpers
//   - SetupEnv: configure environment variables for the duration of a test
package testutils
