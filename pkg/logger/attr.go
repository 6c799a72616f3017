package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TenantID records the tenant identifier under the key "tenant_id".
// If id is nil, it returns an empty Attr.
func TenantID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("tenant_id", id)
}

// AgencyID records the agency identifier under the key "agency_id".
// If id is nil, it returns an empty Attr.
func AgencyID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("agency_id", id)
}

// ListingID records the listing identifier under the key "listing_id".
// If id is nil, it returns an empty Attr.
func ListingID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("listing_id", id)
}

// Tier records a tier identifier under the key "tier".
func Tier(id any) slog.Attr {
	return slog.Any("tier", id)
}

// Kind records a promotion kind under the key "kind".
func Kind(kind any) slog.Attr {
	return slog.Any("kind", kind)
}

// Role records a team role under the key "role".
func Role(role any) slog.Attr {
	return slog.Any("role", role)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
