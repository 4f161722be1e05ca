// Package service contains the application's use cases. It orchestrates the
// stores defined in internal/store to fulfill API operations.
//
// Services enforce the rules that span more than one entity:
//
//   - referenced apiaries and hives must exist
//   - a hive referenced together with an apiary must belong to that apiary
//   - fan-out records ("apply to all hives") are written one per hive
//   - operations that touch several tables run in a single transaction
//
// Request shapes live here as Create*Params and Update*Params types. They carry
// validate tags that the API layer checks before calling a service; services
// assume validated input and only perform the checks that need the database.
package service
