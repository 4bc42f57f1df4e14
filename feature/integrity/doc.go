// Package integrity provides system health checks.
//
// It validates the infrastructure the audit service relies on rather than audit data.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database has the tables and columns of the
//     registry, user directory and conference models (columns, base types).
//   - Outbox: Checks that the report bucket and its prefix exist in object storage.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/outbox : Runs the outbox check (supports ?fix=true).
package integrity
