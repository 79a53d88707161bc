package metrics

import (
	"math"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/pkg/random"
)

// FunnelMetrics is a coherent set of funnel stage counts and conversion
// percentages derived from one trigger count. Each stage count is at most
// the previous stage's count.
type FunnelMetrics struct {
	Triggers              int
	DMConversations       int
	PhotoRequests         int
	PhotosReceived        int
	Generations           int
	SuccessfulGenerations int
	Purchases             int

	TriggerToDMRate       float64
	DMToPhotoRate         float64
	PhotoToSuccessRate    float64
	OverallConversionRate float64
}

// ComputeFunnel samples one conversion rate per stage within its
// configured range and applies them sequentially to the trigger count.
// Percentage ratios guard against zero denominators, yielding 0 instead of
// NaN or Inf.
func ComputeFunnel(src *random.Source, rates config.FunnelRates, triggers int) FunnelMetrics {
	if triggers < 0 {
		triggers = 0
	}

	m := FunnelMetrics{Triggers: triggers}
	m.DMConversations = applyRate(src, triggers, rates.TriggerToDM)
	m.PhotoRequests = applyRate(src, m.DMConversations, rates.DMToPhotoRequest)
	m.PhotosReceived = applyRate(src, m.PhotoRequests, rates.PhotoRequestToReceived)
	m.Generations = applyRate(src, m.PhotosReceived, rates.ReceivedToGeneration)
	m.SuccessfulGenerations = applyRate(src, m.Generations, rates.GenerationToSuccess)
	m.Purchases = applyRate(src, m.SuccessfulGenerations, rates.SuccessToPurchase)

	m.TriggerToDMRate = percentage(m.DMConversations, m.Triggers)
	m.DMToPhotoRate = percentage(m.PhotosReceived, m.DMConversations)
	m.PhotoToSuccessRate = percentage(m.SuccessfulGenerations, m.PhotosReceived)
	m.OverallConversionRate = percentage(m.Purchases, m.Triggers)
	return m
}

func applyRate(src *random.Source, count int, r config.RateRange) int {
	rate := src.Float64Between(r.Min, r.Max)
	next := int(math.Round(float64(count) * rate))
	if next < 0 {
		next = 0
	}
	// Sampled rates above 1.0 would break stage monotonicity.
	if next > count {
		next = count
	}
	return next
}

func percentage(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}
