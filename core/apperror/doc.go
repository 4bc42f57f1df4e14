// Package apperror defines the error taxonomy shared by every feature.
//
// Errors are plain sentinels wrapped with context using fmt.Errorf and %w, so callers
// classify them with errors.Is regardless of how many layers added detail.
//
// # Kinds
//
//   - ErrValidation: missing or malformed input; the caller must fix the request.
//   - ErrNotFound: a referenced asset, user or conference does not exist.
//   - ErrConflict: a duplicate item submission.
//   - ErrInvalidState: the operation is not legal in the conference's lifecycle state.
//   - ErrDependency: the database, registry or notification collaborator failed.
//
// # HTTP Mapping
//
// HTTPStatus and Code translate an error into the status code and machine readable code
// used by the fiber handlers. Anything unclassified is reported as an internal error.
package apperror
