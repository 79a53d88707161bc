package generator

import (
	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/pkg/random"
)

// tierIndex memoizes the performance tier assigned to each post or
// product. An entity is sampled into a tier exactly once; the multiplier
// drawn on assignment is reused for the rest of the run by the journey
// weighting.
type tierIndex struct {
	cfg         *config.GenerationConfig
	tiers       map[string]string
	multipliers map[string]float64
}

func newTierIndex(cfg *config.GenerationConfig) *tierIndex {
	return &tierIndex{
		cfg:         cfg,
		tiers:       make(map[string]string),
		multipliers: make(map[string]float64),
	}
}

// assign returns the entity's tier name and multiplier, sampling them on
// first use.
func (t *tierIndex) assign(src *random.Source, entityID string) (string, float64, error) {
	if tier, ok := t.tiers[entityID]; ok {
		return tier, t.multipliers[entityID], nil
	}

	choices := make([]random.Weighted[config.TierBucket], len(t.cfg.Tiers))
	for i, bucket := range t.cfg.Tiers {
		choices[i] = random.Weighted[config.TierBucket]{Item: bucket, Weight: bucket.Probability}
	}
	bucket, err := random.Choice(src, choices)
	if err != nil {
		return "", 0, err
	}

	multiplier := src.Float64Between(bucket.Multiplier.Min, bucket.Multiplier.Max)
	t.tiers[entityID] = bucket.Tier
	t.multipliers[entityID] = multiplier
	return bucket.Tier, multiplier, nil
}

// multiplier returns the memoized multiplier for an already-assigned
// entity, defaulting to 1 for unknown IDs.
func (t *tierIndex) multiplier(entityID string) float64 {
	if m, ok := t.multipliers[entityID]; ok {
		return m
	}
	return 1
}
