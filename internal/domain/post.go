package domain

import (
	"fmt"
	"time"
)

// Performance tiers assigned once per post (and implicitly per product) by
// weighted categorical sampling. The tier's multiplier biases downstream
// journey sampling toward realistic engagement skew.
const (
	TierViral           = "viral"
	TierHighPerforming  = "high_performing"
	TierAverage         = "average"
	TierUnderperforming = "underperforming"
	TierFlop            = "flop"
)

// Post is a social post published by a workspace's account, optionally
// linked to one product.
type Post struct {
	ID              string    `json:"id"`
	WorkspaceID     string    `json:"workspace_id"`
	AccountID       string    `json:"account_id"`
	ProductID       *string   `json:"product_id"`
	Caption         string    `json:"caption"`
	PerformanceTier string    `json:"performance_tier"`
	PostedAt        time.Time `json:"posted_at"`
}

// Validate validates the post.
func (p *Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post id is required")
	}
	if p.WorkspaceID == "" {
		return fmt.Errorf("post workspace_id is required")
	}
	if p.AccountID == "" {
		return fmt.Errorf("post account_id is required")
	}
	if p.ProductID != nil && *p.ProductID == "" {
		return fmt.Errorf("post product_id must be nil or non-empty")
	}
	return nil
}

// PostMetric is one day of engagement numbers for a post. Reach decays
// geometrically with post age; impressions never drop below reach.
type PostMetric struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post_id"`
	DayIndex    int       `json:"day_index"`
	MetricDate  time.Time `json:"metric_date"`
	Reach       int       `json:"reach"`
	Impressions int       `json:"impressions"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	Saves       int       `json:"saves"`
}

// Validate validates the metric row.
func (m *PostMetric) Validate() error {
	if m.PostID == "" {
		return fmt.Errorf("post metric post_id is required")
	}
	if m.DayIndex < 0 {
		return fmt.Errorf("post metric day_index must be >= 0")
	}
	if m.Impressions < m.Reach {
		return fmt.Errorf("post metric impressions %d below reach %d", m.Impressions, m.Reach)
	}
	if m.Likes < 0 || m.Comments < 0 || m.Shares < 0 || m.Saves < 0 {
		return fmt.Errorf("post metric engagement counts must be >= 0")
	}
	return nil
}
