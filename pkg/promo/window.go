package promo

import "time"

// Window is one promotion placement on an entity. The Active flag is a
// cached hint, not ground truth: ActiveAt recomputes activity from the
// timestamps on every read, so an expired window answers inactive even
// before Reconcile has normalized the flag.
type Window struct {
	Kind        Kind
	Active      bool
	ActivatedAt time.Time

	// ExpiresAt is nil for windows that stay active until explicitly
	// deactivated.
	ExpiresAt *time.Time
}

// ActiveAt reports whether the window is active at the given time.
//
// A window flagged active without an activation timestamp is corrupt; it is
// reported inactive here and flagged by Manager.Reconcile, never trusted.
func (w Window) ActiveAt(now time.Time) bool {
	if !w.Active || w.ActivatedAt.IsZero() {
		return false
	}
	return w.ExpiresAt == nil || now.Before(*w.ExpiresAt)
}

// ExpiredAt reports whether the window has a passed expiry at the given
// time. Manual-clear windows never expire.
func (w Window) ExpiredAt(now time.Time) bool {
	return w.ExpiresAt != nil && !now.Before(*w.ExpiresAt)
}

// corrupt reports the active-without-activation invariant violation.
func (w Window) corrupt() bool {
	return w.Active && w.ActivatedAt.IsZero()
}
