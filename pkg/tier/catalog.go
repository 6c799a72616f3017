package tier

import (
	"context"
	"errors"
	"fmt"
)

// Source defines how tier definitions are loaded into a Catalog.
// The slice order defines the upgrade ladder within each class,
// lowest tier first.
type Source interface {
	Load(ctx context.Context) ([]Definition, error)
}

// Catalog is an immutable lookup table of tier definitions plus the
// fixed successor relation used for upgrade suggestions.
type Catalog struct {
	// These maps are treated as immutable after construction.
	// Thread-safety depends on this immutability assumption.
	defs    map[ID]Definition
	ladders map[Class][]ID
}

// NewCatalog loads and validates definitions from the given source.
func NewCatalog(ctx context.Context, src Source) (*Catalog, error) {
	defs, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTierCatalog, err)
	}

	if err := validateDefinitions(defs); err != nil {
		return nil, err
	}

	c := &Catalog{
		defs:    make(map[ID]Definition, len(defs)),
		ladders: make(map[Class][]ID),
	}
	for _, d := range defs {
		c.defs[d.ID] = d.clone()
		c.ladders[d.Class] = append(c.ladders[d.Class], d.ID)
	}

	return c, nil
}

// Get returns the definition for the given tier ID.
func (c *Catalog) Get(id ID) (Definition, error) {
	def, exists := c.defs[id]
	if !exists {
		return Definition{}, ErrTierNotFound
	}
	return def, nil
}

// Has reports whether the catalog contains the given tier ID.
func (c *Catalog) Has(id ID) bool {
	_, exists := c.defs[id]
	return exists
}

// HasFeature reports whether the given tier enables a feature flag.
// Returns false for unknown tiers to fail closed.
func (c *Catalog) HasFeature(id ID, f Feature) bool {
	def, exists := c.defs[id]
	if !exists {
		return false
	}
	return def.HasFeature(f)
}

// Next returns the successor of the given tier within its class ladder.
// The second return value is false when the tier is already at the top
// of its ladder or is unknown.
func (c *Catalog) Next(id ID) (ID, bool) {
	def, exists := c.defs[id]
	if !exists {
		return "", false
	}

	ladder := c.ladders[def.Class]
	for i, candidate := range ladder {
		if candidate == id && i+1 < len(ladder) {
			return ladder[i+1], true
		}
	}
	return "", false
}

// IDs returns the ordered tier ladder for a class, lowest tier first.
func (c *Catalog) IDs(class Class) []ID {
	ladder := c.ladders[class]
	out := make([]ID, len(ladder))
	copy(out, ladder)
	return out
}

// validateDefinitions ensures the loaded catalog is internally consistent:
// exactly one definition per ID, a known class, and sane quota values.
func validateDefinitions(defs []Definition) error {
	seen := make(map[ID]struct{}, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			return errors.Join(ErrInvalidTierConfiguration,
				fmt.Errorf("tier definition with empty ID"))
		}
		if _, dup := seen[d.ID]; dup {
			return errors.Join(ErrInvalidTierConfiguration,
				fmt.Errorf("duplicate tier definition: %s", d.ID))
		}
		seen[d.ID] = struct{}{}

		if d.Class != ClassIndividual && d.Class != ClassAgency {
			return errors.Join(ErrInvalidTierConfiguration,
				fmt.Errorf("tier %s has unknown class %q", d.ID, d.Class))
		}

		limits := []struct {
			name  string
			value int64
		}{
			{"max_listings", d.MaxListings},
			{"max_images_total", d.MaxImagesTotal},
			{"max_images_per_listing", d.MaxImagesPerListing},
			{"max_agents", d.MaxAgents},
			{"max_super_agents", d.MaxSuperAgents},
			{"max_featured_listings", d.MaxFeaturedListings},
		}
		for _, l := range limits {
			if l.value < Unlimited {
				return errors.Join(ErrInvalidTierConfiguration,
					fmt.Errorf("tier %s has invalid %s: %d", d.ID, l.name, l.value))
			}
		}
	}
	return nil
}
