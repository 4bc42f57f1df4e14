// Package users is the read-only user directory.
//
// Users are managed by the identity system. The audit service resolves participants by
// e-mail or badge number and reads e-mail addresses to address finalized reports.
//
// # HTTP Endpoints
//
//   - GET /users : List the directory.
//   - GET /users/:id : Fetch one user.
package users
