package trial

import (
	"time"

	"github.com/google/uuid"

	"github.com/estately/entitlements/pkg/tier"
)

// Window is a time-boxed grant of elevated capability attached to a tenant.
// Activity is always derived from (Used, EndsAt, now) at the moment of read;
// no "expired" state is ever stored as ground truth.
type Window struct {
	TenantID uuid.UUID
	Class    tier.Class
	Used     bool
	StartsAt time.Time
	EndsAt   *time.Time

	// LastNotifiedThreshold records the smallest pre-expiry warning band
	// (in days) already sent for this window, 0 when none. Persisted so
	// repeated sweep runs within the same day never double-send.
	LastNotifiedThreshold int

	// Finalized marks that the daily sweep has run the expiry handler for
	// this window. Sweep bookkeeping only; read paths never consult it.
	Finalized bool
}

// ActiveAt reports whether the trial is active at the given time.
func (w Window) ActiveAt(now time.Time) bool {
	return w.Used && w.EndsAt != nil && now.Before(*w.EndsAt)
}

// Active reports whether the trial is active right now.
func (w Window) Active() bool {
	return w.ActiveAt(time.Now().UTC())
}

// ExpiredAt reports whether the trial was used and has run out at the given time.
func (w Window) ExpiredAt(now time.Time) bool {
	return w.Used && w.EndsAt != nil && !now.Before(*w.EndsAt)
}

// Expired reports whether the trial has run out.
func (w Window) Expired() bool {
	return w.ExpiredAt(time.Now().UTC())
}

// DaysRemainingAt returns the number of whole days left at the given time,
// rounding partial days up. Returns 0 for unused or expired windows.
func (w Window) DaysRemainingAt(now time.Time) int {
	if !w.ActiveAt(now) {
		return 0
	}

	remaining := w.EndsAt.Sub(now)
	days := int(remaining.Hours() / 24)
	if remaining > time.Duration(days)*24*time.Hour {
		days++
	}
	return days
}

// DaysRemaining returns the number of whole days left in the trial.
func (w Window) DaysRemaining() int {
	return w.DaysRemainingAt(time.Now().UTC())
}

// ProgressPercentAt returns how far through the trial the tenant is at the
// given time, clamped to [0,100]. Unused windows and degenerate zero-length
// windows report 0 so clock skew can never produce an out-of-range value.
func (w Window) ProgressPercentAt(now time.Time) int {
	if !w.Used || w.EndsAt == nil {
		return 0
	}

	total := w.EndsAt.Sub(w.StartsAt)
	if total <= 0 {
		return 0
	}

	elapsed := now.Sub(w.StartsAt)
	pct := int(elapsed * 100 / total)
	return min(max(pct, 0), 100)
}

// ProgressPercent returns the current trial progress, clamped to [0,100].
func (w Window) ProgressPercent() int {
	return w.ProgressPercentAt(time.Now().UTC())
}
