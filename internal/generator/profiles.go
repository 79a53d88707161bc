package generator

import (
	"fmt"
	"sort"

	"github.com/garmio/seedgen/internal/domain"
)

// customerStats accumulates per-token behavior observed across that
// customer's conversations and attributed orders.
type customerStats struct {
	workspaceID   string
	purchases     int
	revenueCents  int
	tryons        int
	firstSeen     int // index of the earliest conversation
	conversations []*domain.Conversation
}

// generateCustomerProfiles derives one profile per distinct customer token.
// The segment is a deterministic decision table over the accumulated stats;
// only the prediction fields are sampled, from the segment's own ranges.
func generateCustomerProfiles(rc *runContext) error {
	stats := make(map[string]*customerStats)
	var tokens []string

	for _, conv := range rc.ds.Conversations {
		st, ok := stats[conv.CustomerToken]
		if !ok {
			st = &customerStats{workspaceID: conv.WorkspaceID}
			stats[conv.CustomerToken] = st
			tokens = append(tokens, conv.CustomerToken)
		}
		st.conversations = append(st.conversations, conv)
		if conv.ResultedInTryon {
			st.tryons++
		}
	}

	for _, order := range rc.ds.Orders {
		if order.ConversationID == nil {
			continue
		}
		conv := rc.lookups.ConversationByID[*order.ConversationID]
		if conv == nil {
			return fmt.Errorf("order %s attributed to unknown conversation %s", order.ID, *order.ConversationID)
		}
		st := stats[conv.CustomerToken]
		st.purchases++
		st.revenueCents += order.TotalPriceCents
	}

	// Map iteration order is not stable; profiles are emitted in token
	// order so a fixed seed yields an identical dataset.
	sort.Strings(tokens)

	for _, token := range tokens {
		st := stats[token]

		firstSeen := st.conversations[0].StartedAt
		lastActivity := st.conversations[0].LastActivityAt
		for _, conv := range st.conversations[1:] {
			if conv.StartedAt.Before(firstSeen) {
				firstSeen = conv.StartedAt
			}
			if conv.LastActivityAt.After(lastActivity) {
				lastActivity = conv.LastActivityAt
			}
		}
		daysSince := int(rc.now.Sub(lastActivity).Hours() / 24)
		if daysSince < 0 {
			daysSince = 0
		}

		segment, ratesKey := classifyCustomer(st, daysSince)
		rates, ok := rc.cfg.Segments[ratesKey]
		if !ok {
			return fmt.Errorf("no rate table for segment %q", ratesKey)
		}

		profile := &domain.CustomerProfile{
			CustomerToken: token,
			WorkspaceID:   st.workspaceID,
			Segment:       segment,

			TotalPurchases:        st.purchases,
			TotalRevenueCents:     st.revenueCents,
			TryonCount:            st.tryons,
			DaysSinceLastActivity: daysSince,

			ChurnProbability:        rc.src.Float64Between(rates.ChurnProbability.Min, rates.ChurnProbability.Max),
			NextPurchaseProbability: rc.src.Float64Between(rates.NextPurchaseProbability.Min, rates.NextPurchaseProbability.Max),
			PredictedLTVCents:       rc.src.IntBetween(rates.PredictedLTVCents.Min, rates.PredictedLTVCents.Max),

			FirstSeenAt: firstSeen,
		}
		if err := profile.Validate(); err != nil {
			return err
		}
		rc.ds.Profiles = append(rc.ds.Profiles, profile)
	}
	return nil
}

// classifyCustomer is the segment decision table, evaluated top to bottom
// with the first matching rule winning. It returns the segment label and
// the rate-table key, which differ for the two casual paths.
func classifyCustomer(st *customerStats, daysSince int) (segment, ratesKey string) {
	switch {
	case st.purchases >= 3 || st.revenueCents > 30000:
		return domain.SegmentHighValue, "high_value"
	case st.purchases >= 1:
		return domain.SegmentRegular, "regular"
	case daysSince > 60:
		return domain.SegmentChurned, "churned"
	case daysSince > 30:
		return domain.SegmentAtRisk, "at_risk"
	case st.tryons > 0:
		return domain.SegmentCasual, "casual_engaged"
	default:
		return domain.SegmentCasual, "casual_new"
	}
}
