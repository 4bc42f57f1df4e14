// Package reconcile classifies scanned asset codes against the canonical location
// registry.
//
// Given a target location and the codes observed there, reconciliation splits the
// assets into three disjoint sets:
//
//   - Verified: expected at the location and scanned.
//   - Missing: expected at the location but not scanned.
//   - Foreign: scanned at the location but registered elsewhere, annotated with the
//     location they really belong to.
//
// Codes without a registry entry are dropped silently by Reconcile; VerifyOne and Lookup,
// which address a single code, report them as not found.
//
// # Architecture
//
// The engine is a set of pure functions over an injected Registry. The registry is the
// only source of truth and the engine never mutates it, so a call can be repeated with
// identical results and parallelized freely.
//
// 1. Registry: read-only access to assets by code, by codes and by location. The assets
// feature provides the database-backed implementation.
//
// 2. Engine: Reconcile builds hashed indices of the expected and scanned sets and walks
// each once, O(|expected| + |scanned|).
//
// 3. Cache: CachedRegistry decorates a Registry with TTL caching of per-location lookups,
// with singleflight stampede protection. Each instance owns its own store.
//
// # Usage Example
//
//	registry := reconcile.NewCachedRegistry(assets.NewRepository(db), time.Minute)
//
//	// Bulk reconciliation
//	result, err := reconcile.Reconcile(ctx, registry, "room-101", []string{"A1", "A3"})
//
//	// Single code against a declared location
//	v, err := reconcile.VerifyOne(ctx, registry, "A3", "room-101")
package reconcile
