package domain

import (
	"fmt"
	"time"
)

// GarmentBinding pairs one post with its linked product and carries the
// full conversion funnel for that pairing. Only posts with a linked
// product get a binding.
type GarmentBinding struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	PostID      string `json:"post_id"`
	ProductID   string `json:"product_id"`

	TotalTriggers         int `json:"total_triggers"`
	TotalDMConversations  int `json:"total_dm_conversations"`
	TotalPhotoRequests    int `json:"total_photo_requests"`
	TotalPhotosReceived   int `json:"total_photos_received"`
	TotalGenerations      int `json:"total_generations"`
	SuccessfulGenerations int `json:"successful_generations"`
	TotalPurchases        int `json:"total_purchases"`

	TriggerToDMRate       float64 `json:"trigger_to_dm_rate"`
	DMToPhotoRate         float64 `json:"dm_to_photo_rate"`
	PhotoToSuccessRate    float64 `json:"photo_to_success_rate"`
	OverallConversionRate float64 `json:"overall_conversion_rate"`

	TotalRevenueCents int       `json:"total_revenue_cents"`
	CreatedAt         time.Time `json:"created_at"`
}

// Validate checks the funnel counter chain: every stage count must be at
// most the previous stage's count.
func (b *GarmentBinding) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("binding id is required")
	}
	if b.PostID == "" || b.ProductID == "" {
		return fmt.Errorf("binding post_id and product_id are required")
	}

	chain := []struct {
		name  string
		count int
	}{
		{"total_triggers", b.TotalTriggers},
		{"total_dm_conversations", b.TotalDMConversations},
		{"total_photo_requests", b.TotalPhotoRequests},
		{"total_photos_received", b.TotalPhotosReceived},
		{"total_generations", b.TotalGenerations},
		{"successful_generations", b.SuccessfulGenerations},
		{"total_purchases", b.TotalPurchases},
	}
	for i := 1; i < len(chain); i++ {
		if chain[i].count > chain[i-1].count {
			return fmt.Errorf("binding funnel not monotonic: %s (%d) > %s (%d)",
				chain[i].name, chain[i].count, chain[i-1].name, chain[i-1].count)
		}
		if chain[i].count < 0 {
			return fmt.Errorf("binding %s must be >= 0", chain[i].name)
		}
	}

	rates := map[string]float64{
		"trigger_to_dm_rate":      b.TriggerToDMRate,
		"dm_to_photo_rate":        b.DMToPhotoRate,
		"photo_to_success_rate":   b.PhotoToSuccessRate,
		"overall_conversion_rate": b.OverallConversionRate,
	}
	for name, rate := range rates {
		if rate < 0 || rate > 100 {
			return fmt.Errorf("binding %s %v out of [0,100]", name, rate)
		}
	}
	return nil
}
