package config

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile is returned when a scale profile name has no preset.
var ErrUnknownProfile = errors.New("unknown scale profile")

// ScaleProfile fixes every cardinality of a generation run. All collection
// counts are derived from these numbers, so two runs with the same profile
// produce identically sized collections.
type ScaleProfile struct {
	Name                       string
	Workspaces                 int
	ProductsPerWorkspace       int
	VariantsPerProduct         int
	PostsPerWorkspace          int
	ConversationsPerWorkspace  int
	OrdersPerWorkspace         int
	SessionsPerWorkspace       int
	DaysOfHistory              int
	InventoryChangesPerVariant int
	ForecastProductCount       int
}

var profiles = map[string]ScaleProfile{
	"small": {
		Name:                       "small",
		Workspaces:                 2,
		ProductsPerWorkspace:       10,
		VariantsPerProduct:         3,
		PostsPerWorkspace:          12,
		ConversationsPerWorkspace:  40,
		OrdersPerWorkspace:         25,
		SessionsPerWorkspace:       60,
		DaysOfHistory:              30,
		InventoryChangesPerVariant: 6,
		ForecastProductCount:       5,
	},
	"medium": {
		Name:                       "medium",
		Workspaces:                 5,
		ProductsPerWorkspace:       30,
		VariantsPerProduct:         4,
		PostsPerWorkspace:          40,
		ConversationsPerWorkspace:  200,
		OrdersPerWorkspace:         120,
		SessionsPerWorkspace:       300,
		DaysOfHistory:              60,
		InventoryChangesPerVariant: 8,
		ForecastProductCount:       15,
	},
	"large": {
		Name:                       "large",
		Workspaces:                 10,
		ProductsPerWorkspace:       80,
		VariantsPerProduct:         5,
		PostsPerWorkspace:          120,
		ConversationsPerWorkspace:  800,
		OrdersPerWorkspace:         500,
		SessionsPerWorkspace:       1200,
		DaysOfHistory:              90,
		InventoryChangesPerVariant: 10,
		ForecastProductCount:       40,
	},
}

// ProfileByName returns a preset scale profile.
func ProfileByName(name string) (ScaleProfile, error) {
	p, ok := profiles[name]
	if !ok {
		return ScaleProfile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// ProfileNames lists the available presets.
func ProfileNames() []string {
	return []string{"small", "medium", "large"}
}

// Validate rejects profiles that cannot produce a coherent dataset.
func (p ScaleProfile) Validate() error {
	if p.Workspaces <= 0 {
		return fmt.Errorf("profile %q: workspaces must be > 0", p.Name)
	}
	if p.ProductsPerWorkspace <= 0 {
		return fmt.Errorf("profile %q: products per workspace must be > 0", p.Name)
	}
	if p.VariantsPerProduct <= 0 {
		return fmt.Errorf("profile %q: variants per product must be > 0", p.Name)
	}
	if p.PostsPerWorkspace <= 0 {
		return fmt.Errorf("profile %q: posts per workspace must be > 0", p.Name)
	}
	if p.DaysOfHistory <= 0 {
		return fmt.Errorf("profile %q: days of history must be > 0", p.Name)
	}
	if p.ConversationsPerWorkspace < 0 || p.OrdersPerWorkspace < 0 || p.SessionsPerWorkspace < 0 {
		return fmt.Errorf("profile %q: counts must be >= 0", p.Name)
	}
	if p.InventoryChangesPerVariant < 0 {
		return fmt.Errorf("profile %q: inventory changes per variant must be >= 0", p.Name)
	}
	if p.ForecastProductCount < 0 {
		return fmt.Errorf("profile %q: forecast product count must be >= 0", p.Name)
	}
	return nil
}
