package domain

import (
	"fmt"
	"time"
)

// Customer segments. Assignment is a deterministic decision table over
// observed behavior, never sampled, so the label stays consistent with its
// inputs when used as ML training data. "casual" is reachable through two
// paths with different probability ranges.
const (
	SegmentHighValue = "high_value"
	SegmentRegular   = "regular"
	SegmentChurned   = "churned"
	SegmentAtRisk    = "at_risk"
	SegmentCasual    = "casual"
)

// CustomerProfile is one row per distinct customer token observed across
// conversations, carrying the deterministic segment and the sampled
// per-segment prediction fields.
type CustomerProfile struct {
	CustomerToken string `json:"customer_token"`
	WorkspaceID   string `json:"workspace_id"`
	Segment       string `json:"segment"`

	TotalPurchases        int `json:"total_purchases"`
	TotalRevenueCents     int `json:"total_revenue_cents"`
	TryonCount            int `json:"tryon_count"`
	DaysSinceLastActivity int `json:"days_since_last_activity"`

	ChurnProbability        float64 `json:"churn_probability"`
	NextPurchaseProbability float64 `json:"next_purchase_probability"`
	PredictedLTVCents       int     `json:"predicted_ltv_cents"`

	FirstSeenAt time.Time `json:"first_seen_at"`
}

// Validate validates the profile row.
func (p *CustomerProfile) Validate() error {
	if p.CustomerToken == "" {
		return fmt.Errorf("customer profile token is required")
	}
	if p.WorkspaceID == "" {
		return fmt.Errorf("customer profile workspace_id is required")
	}
	switch p.Segment {
	case SegmentHighValue, SegmentRegular, SegmentChurned, SegmentAtRisk, SegmentCasual:
	default:
		return fmt.Errorf("unknown customer segment %q", p.Segment)
	}
	if p.ChurnProbability < 0 || p.ChurnProbability > 1 {
		return fmt.Errorf("churn_probability %v out of [0,1]", p.ChurnProbability)
	}
	if p.NextPurchaseProbability < 0 || p.NextPurchaseProbability > 1 {
		return fmt.Errorf("next_purchase_probability %v out of [0,1]", p.NextPurchaseProbability)
	}
	if p.TotalPurchases < 0 || p.TotalRevenueCents < 0 || p.TryonCount < 0 {
		return fmt.Errorf("customer profile counters must be >= 0")
	}
	return nil
}
