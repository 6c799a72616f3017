// Package notify is the outbound notification seam for the entitlement
// engine. Delivery is always best-effort: the trial sweep and lifecycle
// managers log a failed Send and move on, they never fail the operation
// that triggered the notification.
package notify
