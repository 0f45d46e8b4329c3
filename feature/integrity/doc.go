// Package integrity validates the infrastructure the timesheet feature depends on.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database matches the timesheet models (tables, columns, types).
//   - Storage: Checks that the change-log archive bucket exists when archiving is enabled.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true to migrate).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true to create the bucket).
package integrity
