package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/internal/metrics"
	"github.com/garmio/seedgen/pkg/random"
)

// postMetricDays returns the number of daily metric rows per post: one per
// day since posting, capped. Posting dates are sampled so every post has a
// full window, keeping the per-stage cardinality deterministic.
func postMetricDays(rc *runContext) int {
	days := rc.profile.DaysOfHistory
	if days > rc.cfg.PostMetricDayCap {
		days = rc.cfg.PostMetricDayCap
	}
	return days
}

// generatePosts materializes social posts per workspace. A fixed share of
// each workspace's posts links to a product (which posts is random, how
// many is not); every post is assigned its performance tier here, memoized
// for the journey stage.
func generatePosts(rc *runContext) error {
	metricDays := postMetricDays(rc)

	for _, ws := range rc.ds.Workspaces {
		account := rc.lookups.AccountByWorkspace[ws.ID]
		products := rc.lookups.ProductsByWorkspace[ws.ID]
		if len(products) == 0 {
			return fmt.Errorf("workspace %s has no products", ws.ID)
		}

		total := rc.profile.PostsPerWorkspace
		linked := int(math.Round(float64(total) * rc.cfg.ProductLinkRate))
		linkedIdx := make(map[int]bool, linked)
		for _, idx := range rc.src.Perm(total)[:linked] {
			linkedIdx[idx] = true
		}

		// Posting window leaves room for the full metric window.
		windowEnd := rc.now.AddDate(0, 0, -metricDays+1)
		if windowEnd.Before(rc.start) {
			windowEnd = rc.start
		}

		for i := 0; i < total; i++ {
			post := &domain.Post{
				ID:          rc.src.UUID(),
				WorkspaceID: ws.ID,
				AccountID:   account.ID,
				Caption:     random.Pick(rc.src, postCaptions),
				PostedAt:    rc.src.SeasonalDate(rc.start, windowEnd.Add(time.Hour), rc.cfg.MonthlyWeights, rc.cfg.SeasonalAttempts),
			}
			if linkedIdx[i] {
				product := random.Pick(rc.src, products)
				post.ProductID = &product.ID
			}

			tier, _, err := rc.tiers.assign(rc.src, post.ID)
			if err != nil {
				return err
			}
			post.PerformanceTier = tier

			if err := post.Validate(); err != nil {
				return err
			}
			rc.ds.Posts = append(rc.ds.Posts, post)
			rc.lookups.PostsByWorkspace[ws.ID] = append(rc.lookups.PostsByWorkspace[ws.ID], post)
			rc.lookups.PostByID[post.ID] = post
		}
	}
	return nil
}

// generatePostMetrics emits one engagement row per post per day since
// posting, with reach decaying geometrically with post age.
func generatePostMetrics(rc *runContext) error {
	days := postMetricDays(rc)

	for _, post := range rc.ds.Posts {
		baseReach := float64(rc.src.IntBetween(rc.cfg.PostReach.Min, rc.cfg.PostReach.Max))
		baseReach *= rc.tiers.multiplier(post.ID)

		postedDay := post.PostedAt.Truncate(24 * time.Hour)
		for day := 0; day < days; day++ {
			reach := int(math.Round(baseReach * math.Exp(-rc.cfg.PostMetricDecay*float64(day))))
			em := metrics.ComputeEngagement(rc.src, rc.cfg, reach)

			metric := &domain.PostMetric{
				ID:          rc.src.UUID(),
				PostID:      post.ID,
				DayIndex:    day,
				MetricDate:  postedDay.AddDate(0, 0, day),
				Reach:       em.Reach,
				Impressions: em.Impressions,
				Likes:       em.Likes,
				Comments:    em.Comments,
				Shares:      em.Shares,
				Saves:       em.Saves,
			}
			if err := metric.Validate(); err != nil {
				return err
			}
			rc.ds.PostMetrics = append(rc.ds.PostMetrics, metric)
		}
	}
	return nil
}
