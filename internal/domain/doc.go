// Package domain contains the beekeeping entities persisted by the API:
// apiaries, hives with their colony and queen details, inspections with
// their one-to-one detail sections, tasks, and the per-hive feeding,
// harvest and treatment records.
//
// Entities carry both gorm and json tags. Column names match the JSON
// field names so that partial updates can be expressed as column maps.
package domain
