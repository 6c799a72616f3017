package entitlement

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/estately/entitlements/pkg/tier"
)

// Dimension names one quota axis, mirroring the Usage fields.
type Dimension string

const (
	DimensionListings         Dimension = "listings"
	DimensionImages           Dimension = "images"
	DimensionAgents           Dimension = "agents"
	DimensionSuperAgents      Dimension = "super_agents"
	DimensionFeaturedListings Dimension = "featured_listings"
)

// SnapshotSource loads a tenant's entitlement inputs: identity, base tier,
// trial window and current usage counters. Implementations live in the
// surrounding system; this package only consumes them.
type SnapshotSource interface {
	// Load returns the tenant's snapshot and usage.
	// Returns ErrTenantNotFound for unknown tenants.
	Load(ctx context.Context, tenantID uuid.UUID) (TenantSnapshot, Usage, error)
}

// BalanceChecker answers whether a tenant's credit balance covers an
// amount. The ledger itself lives elsewhere; only the yes/no is consumed.
type BalanceChecker interface {
	HasSufficientBalance(ctx context.Context, tenantID uuid.UUID, amount int64) (bool, error)
}

// Service wires the pure decision functions to tenant data. Every call
// loads a fresh snapshot and resolves the effective tier on the spot;
// nothing here is cached.
type Service struct {
	catalog *tier.Catalog
	source  SnapshotSource
	logger  *slog.Logger
	now     func() time.Time

	// Credit-funded featuring: when a tenant exhausts the tier's featured
	// allowance, featuring can still proceed against the credit ledger at
	// this price. nil balance disables the fallback.
	balance      BalanceChecker
	featurePrice int64
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCreditFunding enables credit-funded featuring beyond the tier
// allowance, at the given credit price per featured listing.
func WithCreditFunding(checker BalanceChecker, pricePerFeature int64) ServiceOption {
	return func(s *Service) {
		s.balance = checker
		s.featurePrice = pricePerFeature
	}
}

// NewService creates the entitlement façade. Panics if catalog or source
// is nil.
func NewService(catalog *tier.Catalog, source SnapshotSource, opts ...ServiceOption) *Service {
	if catalog == nil {
		panic("entitlement: tier catalog is required")
	}
	if source == nil {
		panic("entitlement: snapshot source is required")
	}

	s := &Service{
		catalog: catalog,
		source:  source,
		logger:  slog.Default(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveEffectiveTier returns the tier the tenant operates at right now.
func (s *Service) ResolveEffectiveTier(ctx context.Context, tenantID uuid.UUID) (tier.ID, error) {
	snap, _, err := s.load(ctx, tenantID)
	if err != nil {
		return "", err
	}
	return ResolveEffectiveTier(snap, s.now()), nil
}

// Features returns the feature flags available to the tenant right now.
func (s *Service) Features(ctx context.Context, tenantID uuid.UUID) ([]tier.Feature, error) {
	snap, _, err := s.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return TrialFeatures(snap, s.catalog, s.now()), nil
}

// Authorize decides whether the tenant may perform the operation right now,
// against the limits of the effective tier.
func (s *Service) Authorize(ctx context.Context, tenantID uuid.UUID, op Operation) (Decision, error) {
	snap, usage, err := s.load(ctx, tenantID)
	if err != nil {
		return Decision{}, err
	}

	def, err := s.catalog.Get(ResolveEffectiveTier(snap, s.now()))
	if err != nil {
		return Decision{}, err
	}

	decision := Authorize(def, usage, op)
	if !decision.Allowed {
		s.logger.InfoContext(ctx, "operation denied by quota",
			slog.String("tenant_id", tenantID.String()),
			slog.String("tier", string(def.ID)),
			slog.String("decision", decision.String()))
	}
	return decision, nil
}

// AuthorizeFunded is Authorize with a credit fallback: when featuring is
// refused only because the tier allowance ran out, a sufficient credit
// balance turns the refusal into an allow. The caller is expected to charge
// the ledger when it commits the operation.
func (s *Service) AuthorizeFunded(ctx context.Context, tenantID uuid.UUID, op Operation) (Decision, error) {
	decision, err := s.Authorize(ctx, tenantID, op)
	if err != nil {
		return Decision{}, err
	}
	if decision.Allowed || decision.Reason != ReasonFeatureLimit || s.balance == nil {
		return decision, nil
	}

	ok, err := s.balance.HasSufficientBalance(ctx, tenantID, s.featurePrice)
	if err != nil {
		return Decision{}, errors.Join(ErrFailedToCheckBalance, err)
	}
	if !ok {
		return decision, nil
	}

	s.logger.InfoContext(ctx, "featuring funded by credits",
		slog.String("tenant_id", tenantID.String()),
		slog.Int64("price", s.featurePrice))

	return Allow(), nil
}

// UsagePercentages reports per-dimension utilization of the effective
// tier's limits, capped at 100. Unlimited dimensions report -1.
func (s *Service) UsagePercentages(ctx context.Context, tenantID uuid.UUID) (map[Dimension]int, error) {
	snap, usage, err := s.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	def, err := s.catalog.Get(ResolveEffectiveTier(snap, s.now()))
	if err != nil {
		return nil, err
	}

	return map[Dimension]int{
		DimensionListings:         utilizationPct(usage.Listings, def.MaxListings),
		DimensionImages:           utilizationPct(usage.Images, def.MaxImagesTotal),
		DimensionAgents:           utilizationPct(usage.Agents, def.MaxAgents),
		DimensionSuperAgents:      utilizationPct(usage.SuperAgents, def.MaxSuperAgents),
		DimensionFeaturedListings: utilizationPct(usage.FeaturedListings, def.MaxFeaturedListings),
	}, nil
}

// utilizationPct returns current/max as a percentage capped at 100, or -1
// for unlimited dimensions. A zero limit counts as fully used.
func utilizationPct(current, max int64) int {
	if max == tier.Unlimited {
		return -1
	}
	if max <= 0 {
		return 100
	}
	pct := int(current * 100 / max)
	return min(pct, 100)
}

func (s *Service) load(ctx context.Context, tenantID uuid.UUID) (TenantSnapshot, Usage, error) {
	snap, usage, err := s.source.Load(ctx, tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return TenantSnapshot{}, Usage{}, err
		}
		return TenantSnapshot{}, Usage{}, errors.Join(ErrFailedToLoadSnapshot, err)
	}
	return snap, usage, nil
}
