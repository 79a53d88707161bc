package domain

import (
	"fmt"
	"time"
)

// DailyAggregate is a derived summary row: one workspace-level row per day
// plus sparse per-product rows for a sampled subset of products. Its only
// identity is (workspace_id, product_id, metric_date).
type DailyAggregate struct {
	WorkspaceID string    `json:"workspace_id"`
	ProductID   *string   `json:"product_id"`
	MetricDate  time.Time `json:"metric_date"`

	Impressions   int `json:"impressions"`
	Engagements   int `json:"engagements"`
	Conversations int `json:"conversations"`
	Orders        int `json:"orders"`
	RevenueCents  int `json:"revenue_cents"`
}

// Validate validates the aggregate row.
func (a *DailyAggregate) Validate() error {
	if a.WorkspaceID == "" {
		return fmt.Errorf("daily aggregate workspace_id is required")
	}
	if a.ProductID != nil && *a.ProductID == "" {
		return fmt.Errorf("daily aggregate product_id must be nil or non-empty")
	}
	if a.Impressions < 0 || a.Engagements < 0 || a.Conversations < 0 || a.Orders < 0 || a.RevenueCents < 0 {
		return fmt.Errorf("daily aggregate counts must be >= 0")
	}
	return nil
}
