// Package trial manages time-boxed trial windows for tenants.
//
// A tenant has at most one Window. Activity is never stored; it is derived
// from (Used, EndsAt) against the current clock on every read, so a trial
// that ran out at 03:00 is inactive at 03:01 with no write in between. The
// daily sweep (Service.ReconcileExpired, driven by Sweeper) exists only for
// side effects: running class-specific expiry handlers and sending the
// expiration notification exactly once per window.
//
// Pre-expiry warnings fire once per threshold band (15, 7, 3, 1 days by
// default), tracked through Window.LastNotifiedThreshold. Extending a trial
// re-opens bands the new end date moved out of.
package trial
