package promo

// Kind identifies a promotion placement. Kinds are independent of each
// other: a listing may carry any combination at once.
type Kind string

const (
	KindFeatured         Kind = "featured"
	KindUrgent           Kind = "urgent"
	KindHighlighted      Kind = "highlighted"
	KindCategoryFeatured Kind = "category_featured"
	KindCrossPromotion   Kind = "cross_promotion"
	KindShowcase         Kind = "showcase"
	KindPremiumBadge     Kind = "premium_badge"
)

// defaultDurationDays holds the standard paid duration for each kind.
var defaultDurationDays = map[Kind]int{
	KindFeatured:         7,
	KindUrgent:           14,
	KindHighlighted:      30,
	KindCategoryFeatured: 15,
	KindCrossPromotion:   7,
	KindShowcase:         30,
	KindPremiumBadge:     30,
}

// Valid reports whether k is a known promotion kind.
func (k Kind) Valid() bool {
	_, ok := defaultDurationDays[k]
	return ok
}

// DefaultDurationDays returns the standard duration for a kind in days.
// Returns 0 for unknown kinds.
func DefaultDurationDays(k Kind) int {
	return defaultDurationDays[k]
}

// Kinds returns all known promotion kinds.
func Kinds() []Kind {
	return []Kind{
		KindFeatured,
		KindUrgent,
		KindHighlighted,
		KindCategoryFeatured,
		KindCrossPromotion,
		KindShowcase,
		KindPremiumBadge,
	}
}
