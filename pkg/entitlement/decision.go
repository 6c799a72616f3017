package entitlement

import (
	"fmt"

	"github.com/estately/entitlements/pkg/tier"
)

// DenyReason explains a refused operation in terms the caller can render.
type DenyReason string

const (
	ReasonListingLimit      DenyReason = "LISTING_LIMIT"
	ReasonImageLimit        DenyReason = "IMAGE_LIMIT"
	ReasonAgentLimit        DenyReason = "AGENT_LIMIT"
	ReasonSuperAgentLimit   DenyReason = "SUPER_AGENT_LIMIT"
	ReasonFeatureNotAllowed DenyReason = "FEATURE_NOT_ALLOWED"
	ReasonFeatureLimit      DenyReason = "FEATURE_LIMIT"
)

// Decision is the outcome of a quota check. A refusal is a value, not an
// error: hitting a paid-for limit is a normal answer, and callers need the
// current/max pair to render "12/20" upgrade prompts.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	Current int64
	Max     int64
}

// Allow returns a passing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a refusal carrying the exhausted dimension's numbers.
func Deny(reason DenyReason, current, max int64) Decision {
	return Decision{Reason: reason, Current: current, Max: max}
}

// String renders the decision for logs and upgrade prompts.
func (d Decision) String() string {
	if d.Allowed {
		return "allowed"
	}
	if d.Max == tier.Unlimited {
		return string(d.Reason)
	}
	return fmt.Sprintf("%s %d/%d", d.Reason, d.Current, d.Max)
}
