package metrics

import (
	"math"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/pkg/random"
)

// EngagementMetrics is one set of per-post engagement numbers derived from
// a reach value.
type EngagementMetrics struct {
	Reach       int
	Impressions int
	Likes       int
	Comments    int
	Shares      int
	Saves       int
}

// ComputeEngagement derives impressions and an engagement split from a
// reach value. Impressions are always >= reach. Saves are the remainder of
// the engagement split and can go negative before clamping when the
// sampled shares overlap; clamping to zero is the intended behavior, not a
// bug.
func ComputeEngagement(src *random.Source, cfg *config.GenerationConfig, reach int) EngagementMetrics {
	if reach < 0 {
		reach = 0
	}

	m := EngagementMetrics{Reach: reach}
	m.Impressions = int(math.Round(float64(reach) * src.Float64Between(cfg.ImpressionMultiplier.Min, cfg.ImpressionMultiplier.Max)))
	if m.Impressions < reach {
		m.Impressions = reach
	}

	total := int(math.Round(float64(reach) * src.Float64Between(cfg.EngagementRate.Min, cfg.EngagementRate.Max)))
	m.Likes = int(math.Round(float64(total) * src.Float64Between(cfg.LikeShare.Min, cfg.LikeShare.Max)))
	m.Comments = int(math.Round(float64(total) * src.Float64Between(cfg.CommentShare.Min, cfg.CommentShare.Max)))
	m.Shares = int(math.Round(float64(total) * src.Float64Between(cfg.ShareShare.Min, cfg.ShareShare.Max)))
	m.Saves = total - m.Likes - m.Comments - m.Shares

	m.Likes = clampNonNegative(m.Likes)
	m.Comments = clampNonNegative(m.Comments)
	m.Shares = clampNonNegative(m.Shares)
	m.Saves = clampNonNegative(m.Saves)
	return m
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
