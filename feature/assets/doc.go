// Package assets exposes the canonical asset registry.
//
// The registry maps each asset code to the location it is registered at and a
// description. It is owned by the inventory system and is read-only here: this package
// only queries it, through a GORM Repository implementing reconcile.Registry.
//
// # HTTP Endpoints
//
//   - GET /assets/:code : Look up a single asset anywhere in the registry.
//   - POST /assets/verify : Check one code against a declared location.
//   - POST /assets/reconcile : Reconcile a list of scanned codes against a location.
package assets
