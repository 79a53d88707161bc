package generator

import (
	"math"
	"time"

	"github.com/garmio/seedgen/internal/domain"
)

// generateDailyAggregates emits one workspace-level summary row per history
// day plus per-product rows for a fixed-size sampled subset of that
// workspace's products. The per-day product subset is re-drawn each day;
// its size is not.
func generateDailyAggregates(rc *runContext) error {
	for _, ws := range rc.ds.Workspaces {
		products := rc.lookups.ProductsByWorkspace[ws.ID]
		sampled := int(math.Round(float64(len(products)) * rc.cfg.AggregateSample))
		if sampled < 1 {
			sampled = 1
		}
		if sampled > len(products) {
			sampled = len(products)
		}

		for day := 0; day < rc.profile.DaysOfHistory; day++ {
			metricDate := rc.start.AddDate(0, 0, day).Truncate(24 * time.Hour)

			wsRow := &domain.DailyAggregate{
				WorkspaceID:   ws.ID,
				MetricDate:    metricDate,
				Impressions:   rc.src.IntBetween(500, 80000),
				Conversations: rc.src.IntBetween(0, rc.profile.ConversationsPerWorkspace),
				Orders:        rc.src.IntBetween(0, rc.profile.OrdersPerWorkspace),
			}
			wsRow.Engagements = int(math.Round(float64(wsRow.Impressions) *
				rc.src.Float64Between(rc.cfg.EngagementRate.Min, rc.cfg.EngagementRate.Max)))
			wsRow.RevenueCents = wsRow.Orders * rc.src.IntBetween(rc.cfg.ProductPriceCents.Min, rc.cfg.ProductPriceCents.Max)
			if err := wsRow.Validate(); err != nil {
				return err
			}
			rc.ds.DailyAggregates = append(rc.ds.DailyAggregates, wsRow)

			for _, idx := range rc.src.Perm(len(products))[:sampled] {
				product := products[idx]
				row := &domain.DailyAggregate{
					WorkspaceID:   ws.ID,
					ProductID:     &product.ID,
					MetricDate:    metricDate,
					Impressions:   rc.src.IntBetween(50, 8000),
					Conversations: rc.src.IntBetween(0, 10),
					Orders:        rc.src.IntBetween(0, 5),
				}
				row.Engagements = int(math.Round(float64(row.Impressions) *
					rc.src.Float64Between(rc.cfg.EngagementRate.Min, rc.cfg.EngagementRate.Max)))
				row.RevenueCents = row.Orders * product.PriceCents
				if err := row.Validate(); err != nil {
					return err
				}
				rc.ds.DailyAggregates = append(rc.ds.DailyAggregates, row)
			}
		}
	}
	return nil
}
