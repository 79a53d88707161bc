package generator

import (
	"fmt"

	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/internal/metrics"
)

// generateBindings creates one funnel-metrics record per product-linked
// post. Posts without a linked product get no binding.
func generateBindings(rc *runContext) error {
	for _, post := range rc.ds.Posts {
		if post.ProductID == nil {
			continue
		}
		product := rc.lookups.ProductByID[*post.ProductID]
		if product == nil {
			return fmt.Errorf("post %s links unknown product %s", post.ID, *post.ProductID)
		}

		triggers := rc.src.IntBetween(rc.cfg.TriggersPerBinding.Min, rc.cfg.TriggersPerBinding.Max)
		fm := metrics.ComputeFunnel(rc.src, rc.cfg.Funnel, triggers)

		binding := &domain.GarmentBinding{
			ID:          rc.src.UUID(),
			WorkspaceID: post.WorkspaceID,
			PostID:      post.ID,
			ProductID:   product.ID,

			TotalTriggers:         fm.Triggers,
			TotalDMConversations:  fm.DMConversations,
			TotalPhotoRequests:    fm.PhotoRequests,
			TotalPhotosReceived:   fm.PhotosReceived,
			TotalGenerations:      fm.Generations,
			SuccessfulGenerations: fm.SuccessfulGenerations,
			TotalPurchases:        fm.Purchases,

			TriggerToDMRate:       fm.TriggerToDMRate,
			DMToPhotoRate:         fm.DMToPhotoRate,
			PhotoToSuccessRate:    fm.PhotoToSuccessRate,
			OverallConversionRate: fm.OverallConversionRate,

			TotalRevenueCents: fm.Purchases * product.PriceCents,
			CreatedAt:         post.PostedAt,
		}
		if err := binding.Validate(); err != nil {
			return err
		}

		rc.ds.Bindings = append(rc.ds.Bindings, binding)
		rc.lookups.BindingByPost[post.ID] = binding
	}
	return nil
}
