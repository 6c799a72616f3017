// Package usage aggregates per-tenant quota counters from their owning
// stores into one snapshot for entitlement checks, with optional redis
// read-through caching.
package usage
