package tier

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDefinition mirrors Definition with yaml tags so the catalog can be
// maintained as config data rather than code.
type yamlDefinition struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Class               string   `yaml:"class"`
	MonthlyPriceAmount  int64    `yaml:"monthly_price_amount"`
	Currency            string   `yaml:"currency"`
	MaxListings         int64    `yaml:"max_listings"`
	MaxImagesTotal      int64    `yaml:"max_images_total"`
	MaxImagesPerListing int64    `yaml:"max_images_per_listing"`
	MaxAgents           int64    `yaml:"max_agents"`
	MaxSuperAgents      int64    `yaml:"max_super_agents"`
	MaxFeaturedListings int64    `yaml:"max_featured_listings"`
	CanFeatureListings  bool     `yaml:"can_feature_listings"`
	Features            []string `yaml:"features"`
}

type yamlCatalog struct {
	Tiers []yamlDefinition `yaml:"tiers"`
}

type yamlSource struct {
	raw []byte
}

// NewYAMLSource returns a Source that reads the catalog from a YAML file.
// The file is read once at Load time, not at construction.
func NewYAMLSource(path string) Source {
	return &yamlFileSource{path: path}
}

// NewYAMLSourceFromBytes returns a Source backed by raw YAML content.
func NewYAMLSourceFromBytes(raw []byte) Source {
	return &yamlSource{raw: raw}
}

type yamlFileSource struct {
	path string
}

func (s *yamlFileSource) Load(ctx context.Context) ([]Definition, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTierCatalog, err)
	}
	return parseYAMLCatalog(raw)
}

func (s *yamlSource) Load(ctx context.Context) ([]Definition, error) {
	return parseYAMLCatalog(s.raw)
}

func parseYAMLCatalog(raw []byte) ([]Definition, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrFailedToLoadTierCatalog, err)
	}
	if len(doc.Tiers) == 0 {
		return nil, errors.Join(ErrFailedToLoadTierCatalog,
			fmt.Errorf("catalog contains no tiers"))
	}

	defs := make([]Definition, 0, len(doc.Tiers))
	for _, y := range doc.Tiers {
		features := make([]Feature, 0, len(y.Features))
		for _, f := range y.Features {
			features = append(features, Feature(f))
		}

		defs = append(defs, Definition{
			ID:                  ID(y.ID),
			Name:                y.Name,
			Class:               Class(y.Class),
			MonthlyPrice:        Money{Amount: y.MonthlyPriceAmount, Currency: y.Currency},
			MaxListings:         y.MaxListings,
			MaxImagesTotal:      y.MaxImagesTotal,
			MaxImagesPerListing: y.MaxImagesPerListing,
			MaxAgents:           y.MaxAgents,
			MaxSuperAgents:      y.MaxSuperAgents,
			MaxFeaturedListings: y.MaxFeaturedListings,
			CanFeatureListings:  y.CanFeatureListings,
			Features:            features,
		})
	}
	return defs, nil
}
