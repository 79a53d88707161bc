package generator

import (
	"fmt"
	"time"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/pkg/logger"
	"github.com/garmio/seedgen/pkg/random"
)

// Generator runs the multi-stage dataset synthesis pipeline. It is
// single-threaded: one forward pass over a fixed stage order, each stage
// materializing one or two collections from already-materialized parents.
type Generator struct {
	logger          logger.Logger
	cfg             *config.GenerationConfig
	seed            int64
	nullProbability float64
	nowFn           func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the run reproducible. Seed 0 (the default) derives a seed
// from the wall clock.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithNullProbability sets the chance that optional free-text fields are
// left null.
func WithNullProbability(p float64) Option {
	return func(g *Generator) {
		g.nullProbability = p
	}
}

// WithNow pins the reference instant the history window is anchored to.
// Without it the window ends at the current wall-clock hour.
func WithNow(now time.Time) Option {
	return func(g *Generator) {
		g.nowFn = func() time.Time { return now }
	}
}

// New creates a Generator.
func New(log logger.Logger, cfg *config.GenerationConfig, opts ...Option) *Generator {
	g := &Generator{
		logger:          log,
		cfg:             cfg,
		nullProbability: 0.1,
		nowFn:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// runContext is the shared state of one generation run: the pseudo-random
// source, the static configuration, the dataset under construction and the
// lookup index. Stages only append to the dataset and lookups.
type runContext struct {
	src      *random.Source
	cfg      *config.GenerationConfig
	profile  config.ScaleProfile
	now      time.Time
	start    time.Time
	ds       *domain.Dataset
	lookups  *domain.Lookups
	tiers    *tierIndex
	nullProb float64
}

// maybeNull returns nil with the configured null-injection probability,
// so every exporter sees the same nulls.
func (rc *runContext) maybeNull(value string) *string {
	if rc.src.Bool(rc.nullProb) {
		return nil
	}
	return &value
}

// stage is one step of the pipeline. Requires declares the collections the
// stage reads; the runner fails fast when one has not been generated yet,
// instead of silently reading an empty collection.
type stage struct {
	name     string
	requires []string
	provides []string
	run      func(*runContext) error
}

func pipeline() []stage {
	return []stage{
		{
			name:     "workspaces",
			provides: []string{domain.CollectionWorkspaces, domain.CollectionAccounts},
			run:      generateWorkspaces,
		},
		{
			name:     "products",
			requires: []string{domain.CollectionWorkspaces, domain.CollectionAccounts},
			provides: []string{domain.CollectionProducts},
			run:      generateProducts,
		},
		{
			name:     "variants",
			requires: []string{domain.CollectionProducts},
			provides: []string{domain.CollectionVariants},
			run:      generateVariants,
		},
		{
			name:     "inventory_history",
			requires: []string{domain.CollectionVariants},
			provides: []string{domain.CollectionInventoryHistory},
			run:      generateInventoryHistory,
		},
		{
			name:     "posts",
			requires: []string{domain.CollectionWorkspaces, domain.CollectionProducts},
			provides: []string{domain.CollectionPosts},
			run:      generatePosts,
		},
		{
			name:     "post_metrics",
			requires: []string{domain.CollectionPosts},
			provides: []string{domain.CollectionPostMetrics},
			run:      generatePostMetrics,
		},
		{
			name:     "bindings",
			requires: []string{domain.CollectionPosts, domain.CollectionProducts},
			provides: []string{domain.CollectionBindings},
			run:      generateBindings,
		},
		{
			name:     "conversations",
			requires: []string{domain.CollectionWorkspaces, domain.CollectionAccounts},
			provides: []string{domain.CollectionConversations},
			run:      generateConversations,
		},
		{
			name:     "orders",
			requires: []string{domain.CollectionProducts, domain.CollectionConversations, domain.CollectionBindings},
			provides: []string{domain.CollectionOrders},
			run:      generateOrders,
		},
		{
			name:     "journey_events",
			requires: []string{domain.CollectionWorkspaces, domain.CollectionPosts},
			provides: []string{domain.CollectionJourneyEvents},
			run:      generateJourneyEvents,
		},
		{
			name:     "daily_aggregates",
			requires: []string{domain.CollectionWorkspaces, domain.CollectionProducts, domain.CollectionConversations, domain.CollectionOrders},
			provides: []string{domain.CollectionDailyAggregates},
			run:      generateDailyAggregates,
		},
		{
			name:     "customer_profiles",
			requires: []string{domain.CollectionConversations, domain.CollectionOrders},
			provides: []string{domain.CollectionProfiles},
			run:      generateCustomerProfiles,
		},
		{
			name:     "demand_forecasts",
			requires: []string{domain.CollectionProducts},
			provides: []string{domain.CollectionForecasts},
			run:      generateDemandForecasts,
		},
	}
}

// Generate runs the full pipeline for one scale profile. Any malformed
// configuration or missing collection aborts the run; there is no partial
// output and no retry.
func (g *Generator) Generate(profile config.ScaleProfile) (*domain.Dataset, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scale profile: %w", err)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}

	now := g.nowFn().UTC().Truncate(time.Hour)
	rc := &runContext{
		src:      random.New(g.seed),
		cfg:      g.cfg,
		profile:  profile,
		now:      now,
		start:    now.AddDate(0, 0, -profile.DaysOfHistory),
		ds:       &domain.Dataset{},
		lookups:  domain.NewLookups(),
		tiers:    newTierIndex(g.cfg),
		nullProb: g.nullProbability,
	}

	g.logger.WithFields(map[string]interface{}{
		"profile": profile.Name,
		"seed":    g.seed,
	}).Info("Starting dataset generation")

	generated := make(map[string]bool)
	for _, st := range pipeline() {
		for _, req := range st.requires {
			if !generated[req] {
				return nil, fmt.Errorf("stage %s requires collection %s before it has been generated", st.name, req)
			}
		}

		if err := st.run(rc); err != nil {
			return nil, fmt.Errorf("stage %s: %w", st.name, err)
		}
		for _, col := range st.provides {
			generated[col] = true
		}

		g.logger.WithField("stage", st.name).Debug("Stage completed")
	}

	counts := rc.ds.Counts()
	fields := make(map[string]interface{}, len(counts))
	for name, n := range counts {
		fields[name] = n
	}
	g.logger.WithFields(fields).Info("Dataset generation completed")

	return rc.ds, nil
}
