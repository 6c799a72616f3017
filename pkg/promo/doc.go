// Package promo manages time-boxed promotion placements on listings and
// agency profiles: featured, urgent, highlighted and friends, alone or in
// bundles.
//
// Each entity carries at most one window per kind. There is no background
// expiry job: windows answer ActiveAt from their timestamps, and
// Manager.Reconcile lazily normalizes stale Active flags the next time the
// entity is read. Reconcile is idempotent and writes only when something
// actually changed.
package promo
