// Package entitlement answers "may tenant T do operation O right now".
//
// The effective tier is derived fresh on every call by overlaying the trial
// window on the base tier; it is never stored or cached, so entitlements
// follow the clock without any write. Quota refusals are Decision values
// carrying the exhausted dimension's current/max pair, not errors: hitting
// a paid-for limit is a normal answer the caller renders as an upgrade
// prompt.
//
// Authorize is a pure pre-check. It does not reserve capacity, so two
// concurrent requests at limit-1 may both pass; callers commit promptly and
// the system tolerates a brief overshoot of one.
package entitlement
