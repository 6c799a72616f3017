package notify

// Template identifies an outbound notification kind.
type Template string

const (
	TemplateTrialStarted   Template = "trial_started"
	TemplateTrialExtended  Template = "trial_extended"
	TemplateTrialExpiring  Template = "trial_expiring"
	TemplateTrialExpired   Template = "trial_expired"
	TemplateQuotaApproach  Template = "quota_approaching"
	TemplatePromotionEnded Template = "promotion_ended"
)

// Params carries template-specific placeholder values, e.g. {"days": "7"}.
type Params map[string]string
