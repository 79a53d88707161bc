package config

import "fmt"

// RateRange is an inclusive sampling range for a rate or multiplier.
type RateRange struct {
	Min float64
	Max float64
}

// IntRange is an inclusive sampling range for integer quantities.
type IntRange struct {
	Min int
	Max int
}

// WeightedValue is one entry of a weighted-choice table.
type WeightedValue struct {
	Value  string
	Weight float64
}

// DeviceProfile pairs a device's traffic share with its conversion
// multiplier, applied when weighting journey depth.
type DeviceProfile struct {
	Name                 string
	Weight               float64
	ConversionMultiplier float64
}

// TierBucket configures one performance tier: how likely a post or product
// is to land in it and the multiplier range sampled once on assignment.
type TierBucket struct {
	Tier        string
	Probability float64
	Multiplier  RateRange
}

// SequenceBucket is one entry of the categorical event-sequence
// distribution used by journey synthesis. Depth is the deepest funnel stage
// the sequence reaches and drives the multiplier redistribution.
type SequenceBucket struct {
	Events      []string
	Depth       int
	Probability float64
}

// SegmentRates holds the per-segment probability ranges sampled after the
// deterministic segment assignment.
type SegmentRates struct {
	ChurnProbability        RateRange
	NextPurchaseProbability RateRange
	PredictedLTVCents       IntRange
}

// FunnelRates configures the six stage-to-stage conversion ranges of the
// post/product funnel. One rate per stage is sampled per binding.
type FunnelRates struct {
	TriggerToDM            RateRange
	DMToPhotoRequest       RateRange
	PhotoRequestToReceived RateRange
	ReceivedToGeneration   RateRange
	GenerationToSuccess    RateRange
	SuccessToPurchase      RateRange
}

// GenerationConfig is the immutable bundle of rate tables and weighted
// tables the pipeline samples from. It is shared, read-only, by every
// stage.
type GenerationConfig struct {
	Funnel FunnelRates

	// Engagement metric ranges.
	ImpressionMultiplier RateRange
	EngagementRate       RateRange
	LikeShare            RateRange
	CommentShare         RateRange
	ShareShare           RateRange

	// Temporal weight tables.
	MonthlyWeights       [12]float64
	HourlyWeights        [24]float64
	DayOfWeekMultipliers [7]float64 // indexed by time.Weekday
	SeasonalAttempts     int

	// Weighted-choice tables.
	Devices            []DeviceProfile
	Geographies        []WeightedValue
	Categories         []WeightedValue
	Channels           []WeightedValue
	OrderStatuses      []WeightedValue
	ConversationStates []WeightedValue

	// Performance tiers and journey synthesis.
	Tiers           []TierBucket
	SequenceBuckets []SequenceBucket
	EventDelays     map[string]IntRange // seconds until this event fires
	MultiplierClamp RateRange

	// Customer segmentation.
	Segments map[string]SegmentRates

	// Chance a conversation whose try-on was generated converts to a
	// purchase.
	TryonPurchaseRate RateRange

	// Entity value ranges.
	ProductPriceCents   IntRange
	ProductInventory    IntRange
	TriggersPerBinding  IntRange
	PostReach           IntRange
	OrderItems          IntRange
	OrderTaxRate        RateRange
	OrderShippingCents  IntRange
	OrderDiscountChance float64
	OrderDiscountCents  IntRange
	ForecastBaseDemand  IntRange
	VariantJitter       float64

	InventoryMax     int
	PostMetricDayCap int
	PostMetricDecay  float64
	ProductLinkRate  float64 // chance a post is linked to a product
	AggregateSample  float64 // share of products with per-product daily rows
}

// DefaultGenerationConfig returns the production rate tables.
func DefaultGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		Funnel: FunnelRates{
			TriggerToDM:            RateRange{Min: 0.08, Max: 0.18},
			DMToPhotoRequest:       RateRange{Min: 0.40, Max: 0.70},
			PhotoRequestToReceived: RateRange{Min: 0.50, Max: 0.80},
			ReceivedToGeneration:   RateRange{Min: 0.85, Max: 0.98},
			GenerationToSuccess:    RateRange{Min: 0.70, Max: 0.92},
			SuccessToPurchase:      RateRange{Min: 0.05, Max: 0.15},
		},

		ImpressionMultiplier: RateRange{Min: 1.2, Max: 2.5},
		EngagementRate:       RateRange{Min: 0.01, Max: 0.15},
		LikeShare:            RateRange{Min: 0.55, Max: 0.75},
		CommentShare:         RateRange{Min: 0.05, Max: 0.15},
		ShareShare:           RateRange{Min: 0.05, Max: 0.12},

		MonthlyWeights: [12]float64{
			0.70, 0.75, 0.85, 0.90, 0.95, 0.90,
			0.85, 0.90, 1.00, 1.10, 1.50, 1.40,
		},
		HourlyWeights: [24]float64{
			0.2, 0.1, 0.1, 0.1, 0.1, 0.2,
			0.4, 0.7, 1.0, 1.1, 1.0, 1.2,
			1.4, 1.2, 1.0, 1.0, 1.1, 1.3,
			1.6, 1.9, 2.0, 1.7, 1.1, 0.5,
		},
		DayOfWeekMultipliers: [7]float64{1.10, 0.90, 0.90, 0.95, 1.00, 1.15, 1.25},
		SeasonalAttempts:     10,

		Devices: []DeviceProfile{
			{Name: "mobile", Weight: 0.65, ConversionMultiplier: 1.10},
			{Name: "desktop", Weight: 0.25, ConversionMultiplier: 0.90},
			{Name: "tablet", Weight: 0.10, ConversionMultiplier: 0.80},
		},
		Geographies: []WeightedValue{
			{Value: "US", Weight: 0.35},
			{Value: "GB", Weight: 0.12},
			{Value: "DE", Weight: 0.10},
			{Value: "FR", Weight: 0.08},
			{Value: "BR", Weight: 0.08},
			{Value: "JP", Weight: 0.07},
			{Value: "AU", Weight: 0.06},
			{Value: "CA", Weight: 0.06},
			{Value: "ES", Weight: 0.04},
			{Value: "IT", Weight: 0.04},
		},
		Categories: []WeightedValue{
			{Value: "dresses", Weight: 0.22},
			{Value: "tops", Weight: 0.20},
			{Value: "bottoms", Weight: 0.15},
			{Value: "outerwear", Weight: 0.12},
			{Value: "activewear", Weight: 0.10},
			{Value: "shoes", Weight: 0.09},
			{Value: "accessories", Weight: 0.07},
			{Value: "swimwear", Weight: 0.05},
		},
		Channels: []WeightedValue{
			{Value: "instagram", Weight: 0.50},
			{Value: "tiktok", Weight: 0.30},
			{Value: "facebook", Weight: 0.20},
		},
		OrderStatuses: []WeightedValue{
			{Value: "pending", Weight: 0.10},
			{Value: "paid", Weight: 0.35},
			{Value: "fulfilled", Weight: 0.40},
			{Value: "cancelled", Weight: 0.10},
			{Value: "refunded", Weight: 0.05},
		},
		ConversationStates: []WeightedValue{
			{Value: "initial", Weight: 0.05},
			{Value: "greeting_sent", Weight: 0.08},
			{Value: "awaiting_response", Weight: 0.12},
			{Value: "photo_requested", Weight: 0.10},
			{Value: "awaiting_photo", Weight: 0.08},
			{Value: "processing_tryon", Weight: 0.07},
			{Value: "result_sent", Weight: 0.15},
			{Value: "completed", Weight: 0.20},
			{Value: "abandoned", Weight: 0.15},
		},

		Tiers: []TierBucket{
			{Tier: "viral", Probability: 0.02, Multiplier: RateRange{Min: 5.0, Max: 20.0}},
			{Tier: "high_performing", Probability: 0.13, Multiplier: RateRange{Min: 2.0, Max: 5.0}},
			{Tier: "average", Probability: 0.50, Multiplier: RateRange{Min: 0.8, Max: 2.0}},
			{Tier: "underperforming", Probability: 0.25, Multiplier: RateRange{Min: 0.3, Max: 0.8}},
			{Tier: "flop", Probability: 0.10, Multiplier: RateRange{Min: 0.05, Max: 0.3}},
		},
		SequenceBuckets: []SequenceBucket{
			{Events: []string{"post_view"}, Depth: 1, Probability: 0.30},
			{Events: []string{"post_view", "post_like"}, Depth: 2, Probability: 0.18},
			{Events: []string{"post_view", "post_like", "post_comment"}, Depth: 2, Probability: 0.08},
			{Events: []string{"post_view", "post_share"}, Depth: 2, Probability: 0.06},
			{Events: []string{"post_view", "post_like", "dm_open"}, Depth: 3, Probability: 0.12},
			{Events: []string{"post_view", "dm_open", "photo_sent"}, Depth: 3, Probability: 0.08},
			{Events: []string{"post_view", "post_like", "dm_open", "photo_sent", "tryon_view"}, Depth: 4, Probability: 0.08},
			{Events: []string{"post_view", "dm_open", "photo_sent", "tryon_view", "add_to_cart"}, Depth: 4, Probability: 0.05},
			{Events: []string{"post_view", "post_like", "dm_open", "photo_sent", "tryon_view", "add_to_cart", "purchase"}, Depth: 5, Probability: 0.05},
		},
		EventDelays: map[string]IntRange{
			"post_view":    {Min: 0, Max: 0},
			"post_like":    {Min: 2, Max: 45},
			"post_comment": {Min: 10, Max: 180},
			"post_share":   {Min: 5, Max: 120},
			"dm_open":      {Min: 30, Max: 900},
			"photo_sent":   {Min: 120, Max: 3600},
			"tryon_view":   {Min: 20, Max: 300},
			"add_to_cart":  {Min: 10, Max: 240},
			"purchase":     {Min: 60, Max: 1800},
		},
		MultiplierClamp: RateRange{Min: 0.3, Max: 3.0},

		Segments: map[string]SegmentRates{
			"high_value": {
				ChurnProbability:        RateRange{Min: 0.02, Max: 0.10},
				NextPurchaseProbability: RateRange{Min: 0.55, Max: 0.85},
				PredictedLTVCents:       IntRange{Min: 60000, Max: 250000},
			},
			"regular": {
				ChurnProbability:        RateRange{Min: 0.10, Max: 0.25},
				NextPurchaseProbability: RateRange{Min: 0.30, Max: 0.55},
				PredictedLTVCents:       IntRange{Min: 15000, Max: 60000},
			},
			"churned": {
				ChurnProbability:        RateRange{Min: 0.75, Max: 0.95},
				NextPurchaseProbability: RateRange{Min: 0.01, Max: 0.08},
				PredictedLTVCents:       IntRange{Min: 0, Max: 5000},
			},
			"at_risk": {
				ChurnProbability:        RateRange{Min: 0.45, Max: 0.70},
				NextPurchaseProbability: RateRange{Min: 0.08, Max: 0.25},
				PredictedLTVCents:       IntRange{Min: 2000, Max: 20000},
			},
			"casual_engaged": {
				ChurnProbability:        RateRange{Min: 0.25, Max: 0.45},
				NextPurchaseProbability: RateRange{Min: 0.12, Max: 0.30},
				PredictedLTVCents:       IntRange{Min: 1000, Max: 15000},
			},
			"casual_new": {
				ChurnProbability:        RateRange{Min: 0.35, Max: 0.60},
				NextPurchaseProbability: RateRange{Min: 0.05, Max: 0.18},
				PredictedLTVCents:       IntRange{Min: 0, Max: 8000},
			},
		},

		TryonPurchaseRate: RateRange{Min: 0.20, Max: 0.40},

		ProductPriceCents:   IntRange{Min: 1900, Max: 24900},
		ProductInventory:    IntRange{Min: 20, Max: 400},
		TriggersPerBinding:  IntRange{Min: 50, Max: 5000},
		PostReach:           IntRange{Min: 200, Max: 50000},
		OrderItems:          IntRange{Min: 1, Max: 4},
		OrderTaxRate:        RateRange{Min: 0.05, Max: 0.10},
		OrderShippingCents:  IntRange{Min: 0, Max: 1500},
		OrderDiscountChance: 0.25,
		OrderDiscountCents:  IntRange{Min: 200, Max: 3000},
		ForecastBaseDemand:  IntRange{Min: 5, Max: 400},
		VariantJitter:       0.10,

		InventoryMax:     500,
		PostMetricDayCap: 30,
		PostMetricDecay:  0.1,
		ProductLinkRate:  0.6,
		AggregateSample:  0.1,
	}
}

// Validate rejects malformed rate tables before a run starts. Every
// weighted table must carry positive total weight and every range must be
// ordered.
func (c *GenerationConfig) Validate() error {
	ranges := map[string]RateRange{
		"funnel.trigger_to_dm":             c.Funnel.TriggerToDM,
		"funnel.dm_to_photo_request":       c.Funnel.DMToPhotoRequest,
		"funnel.photo_request_to_received": c.Funnel.PhotoRequestToReceived,
		"funnel.received_to_generation":    c.Funnel.ReceivedToGeneration,
		"funnel.generation_to_success":     c.Funnel.GenerationToSuccess,
		"funnel.success_to_purchase":       c.Funnel.SuccessToPurchase,
		"impression_multiplier":            c.ImpressionMultiplier,
		"engagement_rate":                  c.EngagementRate,
		"multiplier_clamp":                 c.MultiplierClamp,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("rate range %s is malformed: [%v, %v]", name, r.Min, r.Max)
		}
	}

	tables := map[string][]WeightedValue{
		"geographies":         c.Geographies,
		"categories":          c.Categories,
		"channels":            c.Channels,
		"order_statuses":      c.OrderStatuses,
		"conversation_states": c.ConversationStates,
	}
	for name, table := range tables {
		if err := validateWeights(name, table); err != nil {
			return err
		}
	}

	total := 0.0
	for _, d := range c.Devices {
		total += d.Weight
	}
	if total <= 0 {
		return fmt.Errorf("weighted table devices has zero total weight")
	}

	total = 0.0
	for _, t := range c.Tiers {
		total += t.Probability
	}
	if total <= 0 {
		return fmt.Errorf("performance tier table has zero total probability")
	}

	total = 0.0
	for _, b := range c.SequenceBuckets {
		if len(b.Events) == 0 {
			return fmt.Errorf("sequence bucket with empty event list")
		}
		if b.Depth < 1 || b.Depth > 5 {
			return fmt.Errorf("sequence bucket depth %d out of range [1,5]", b.Depth)
		}
		for _, ev := range b.Events {
			if _, ok := c.EventDelays[ev]; !ok {
				return fmt.Errorf("event type %q has no delay range", ev)
			}
		}
		total += b.Probability
	}
	if total <= 0 {
		return fmt.Errorf("sequence bucket table has zero total probability")
	}

	if len(c.Segments) == 0 {
		return fmt.Errorf("segment rate table is empty")
	}
	if c.InventoryMax <= 0 {
		return fmt.Errorf("inventory max must be > 0")
	}
	if c.PostMetricDayCap <= 0 {
		return fmt.Errorf("post metric day cap must be > 0")
	}
	if c.SeasonalAttempts <= 0 {
		return fmt.Errorf("seasonal attempts must be > 0")
	}
	return nil
}

func validateWeights(name string, table []WeightedValue) error {
	total := 0.0
	for _, w := range table {
		if w.Weight < 0 {
			return fmt.Errorf("weighted table %s has negative weight for %q", name, w.Value)
		}
		total += w.Weight
	}
	if total <= 0 {
		return fmt.Errorf("weighted table %s has zero total weight", name)
	}
	return nil
}
