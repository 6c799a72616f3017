package trial

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/estately/entitlements/pkg/notify"
	"github.com/estately/entitlements/pkg/tier"
)

// ExpiryHandler runs class-specific follow-up when a trial expires.
// Agency handlers typically recompute downstream state; individual handlers
// usually do nothing because the effective tier falls back to base on its own.
type ExpiryHandler func(ctx context.Context, w Window) error

// Service manages the trial window lifecycle: opt-in, extension, manual end
// and the daily expiry sweep. All derived reads (active, days remaining,
// progress) are pure functions on Window and never require the Service.
type Service struct {
	store      Store
	sender     notify.Sender
	logger     *slog.Logger
	now        func() time.Time
	thresholds []int // descending pre-expiry warning bands, in days

	// handlers must be registered before the sweeper starts; the map is
	// treated as immutable afterwards.
	handlers map[tier.Class]ExpiryHandler
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for sweep progress and delivery failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithWarningThresholds replaces the default 15/7/3/1-day warning bands.
// Values must be in descending order.
func WithWarningThresholds(days ...int) Option {
	return func(s *Service) {
		if len(days) > 0 {
			s.thresholds = days
		}
	}
}

// NewService creates a trial lifecycle manager.
// Panics if store is nil to fail fast during initialization.
func NewService(store Store, sender notify.Sender, opts ...Option) *Service {
	if store == nil {
		panic("trial: Store is required")
	}
	if sender == nil {
		sender = notify.NewLogSender(nil)
	}

	s := &Service{
		store:      store,
		sender:     sender,
		logger:     slog.Default(),
		now:        func() time.Time { return time.Now().UTC() },
		thresholds: []int{15, 7, 3, 1},
		handlers:   make(map[tier.Class]ExpiryHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterExpiryHandler installs the class-specific expiration follow-up.
// Must be called before the sweeper starts.
func (s *Service) RegisterExpiryHandler(class tier.Class, fn ExpiryHandler) {
	if fn == nil {
		panic("trial: ExpiryHandler cannot be nil")
	}
	s.handlers[class] = fn
}

// Get returns the tenant's trial window, or ErrNotFound.
func (s *Service) Get(ctx context.Context, tenantID uuid.UUID) (*Window, error) {
	return s.store.Get(ctx, tenantID)
}

// Start opts a tenant into a trial of the given duration.
// Returns ErrAlreadyInTrial when the tenant already has a running trial.
func (s *Service) Start(ctx context.Context, tenantID uuid.UUID, class tier.Class, durationDays int) (*Window, error) {
	if durationDays <= 0 {
		return nil, ErrInvalidDays
	}

	now := s.now()

	existing, err := s.store.Get(ctx, tenantID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Used && !existing.ExpiredAt(now) {
		return nil, ErrAlreadyInTrial
	}

	end := now.AddDate(0, 0, durationDays)
	w := &Window{
		TenantID: tenantID,
		Class:    class,
		Used:     true,
		StartsAt: now,
		EndsAt:   &end,
	}

	if err := s.store.Save(ctx, w); err != nil {
		return nil, err
	}

	s.notifyBestEffort(ctx, tenantID, notify.TemplateTrialStarted, notify.Params{
		"days": strconv.Itoa(durationDays),
	})

	s.logger.InfoContext(ctx, "trial started",
		slog.String("tenant_id", tenantID.String()),
		slog.String("class", string(class)),
		slog.Time("ends_at", end))

	return w, nil
}

// Extend grants additional days to a tenant's trial. When no window exists,
// a fresh one ending now+additionalDays is created. Calling Extend twice adds
// twice; the operation mirrors a "grant more days" semantic and is not
// globally idempotent.
func (s *Service) Extend(ctx context.Context, tenantID uuid.UUID, additionalDays int) (*Window, error) {
	if additionalDays <= 0 {
		return nil, ErrInvalidDays
	}

	now := s.now()

	w, err := s.store.Get(ctx, tenantID)
	if errors.Is(err, ErrNotFound) {
		end := now.AddDate(0, 0, additionalDays)
		w = &Window{
			TenantID: tenantID,
			Used:     true,
			StartsAt: now,
			EndsAt:   &end,
		}
	} else if err != nil {
		return nil, err
	} else {
		var end time.Time
		if w.EndsAt == nil {
			end = now.AddDate(0, 0, additionalDays)
		} else {
			end = w.EndsAt.AddDate(0, 0, additionalDays)
		}
		w.EndsAt = &end
		w.Used = true
		w.Finalized = false

		// Re-open warning bands the extension pushed the window out of,
		// so they fire again as the new end date approaches.
		if w.LastNotifiedThreshold > 0 && w.DaysRemainingAt(now) > w.LastNotifiedThreshold {
			w.LastNotifiedThreshold = 0
		}
	}

	if err := s.store.Save(ctx, w); err != nil {
		return nil, err
	}

	s.notifyBestEffort(ctx, tenantID, notify.TemplateTrialExtended, notify.Params{
		"days": strconv.Itoa(additionalDays),
	})

	return w, nil
}

// End deactivates a tenant's trial window. Irreversible for this window;
// a later trial, if allowed, is a new window.
func (s *Service) End(ctx context.Context, tenantID uuid.UUID) error {
	w, err := s.store.Get(ctx, tenantID)
	if err != nil {
		return err
	}

	w.Used = false
	w.EndsAt = nil

	return s.store.Save(ctx, w)
}

// ReconcileExpired is the daily sweep: it finalizes every expired,
// not-yet-finalized window, runs the class-specific expiry handler and emits
// the expiration notification. One tenant's failure never aborts the sweep
// for the remaining tenants. This is the only place expiry is eagerly
// written; every read path computes activity live.
func (s *Service) ReconcileExpired(ctx context.Context) error {
	now := s.now()

	expired, err := s.store.ListExpired(ctx, now)
	if err != nil {
		return err
	}

	for i := range expired {
		w := expired[i]
		if err := s.finalizeWindow(ctx, &w); err != nil {
			s.logger.ErrorContext(ctx, "trial sweep: failed to finalize window",
				slog.String("tenant_id", w.TenantID.String()),
				slog.Any("error", err))
		}
	}

	s.logger.InfoContext(ctx, "trial sweep completed",
		slog.Int("finalized", len(expired)))

	return nil
}

func (s *Service) finalizeWindow(ctx context.Context, w *Window) error {
	if handler, exists := s.handlers[w.Class]; exists {
		if err := handler(ctx, *w); err != nil {
			return err
		}
	}

	w.Finalized = true
	if err := s.store.Save(ctx, w); err != nil {
		return err
	}

	s.notifyBestEffort(ctx, w.TenantID, notify.TemplateTrialExpired, notify.Params{
		"class": string(w.Class),
	})

	return nil
}

// NotifyExpiring sends graduated pre-expiry warnings. Each warning band
// fires at most once per window: the smallest band covering the remaining
// days is chosen, and windows remember the last band already sent.
func (s *Service) NotifyExpiring(ctx context.Context) error {
	if len(s.thresholds) == 0 {
		return nil
	}

	now := s.now()

	expiring, err := s.store.ListExpiring(ctx, now, s.thresholds[0])
	if err != nil {
		return err
	}

	for i := range expiring {
		w := expiring[i]

		band, ok := s.warningBand(w.DaysRemainingAt(now))
		if !ok || (w.LastNotifiedThreshold > 0 && band >= w.LastNotifiedThreshold) {
			continue
		}

		s.notifyBestEffort(ctx, w.TenantID, notify.TemplateTrialExpiring, notify.Params{
			"days": strconv.Itoa(w.DaysRemainingAt(now)),
		})

		w.LastNotifiedThreshold = band
		if err := s.store.Save(ctx, &w); err != nil {
			s.logger.ErrorContext(ctx, "trial sweep: failed to record warning band",
				slog.String("tenant_id", w.TenantID.String()),
				slog.Any("error", err))
		}
	}

	return nil
}

// warningBand returns the smallest configured band covering daysRemaining.
func (s *Service) warningBand(daysRemaining int) (int, bool) {
	band, found := 0, false
	for _, t := range s.thresholds {
		if daysRemaining <= t {
			band, found = t, true
		}
	}
	return band, found
}

// notifyBestEffort delivers a notification without letting failures reach
// the caller: delivery problems are logged and swallowed.
func (s *Service) notifyBestEffort(ctx context.Context, tenantID uuid.UUID, tpl notify.Template, params notify.Params) {
	if err := s.sender.Send(ctx, tenantID, tpl, params); err != nil {
		s.logger.WarnContext(ctx, "failed to send trial notification",
			slog.String("tenant_id", tenantID.String()),
			slog.String("template", string(tpl)),
			slog.Any("error", err))
	}
}
