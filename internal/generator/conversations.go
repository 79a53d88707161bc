package generator

import (
	"time"

	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/pkg/random"
)

// generateConversations materializes DM threads per workspace. Each
// conversation samples one lifecycle state independently; the try-on and
// purchase flags are derived from it, never the other way around.
func generateConversations(rc *runContext) error {
	for _, ws := range rc.ds.Workspaces {
		account := rc.lookups.AccountByWorkspace[ws.ID]

		for i := 0; i < rc.profile.ConversationsPerWorkspace; i++ {
			state, err := random.Choice(rc.src, weightedValues(rc.cfg.ConversationStates))
			if err != nil {
				return err
			}

			tryon := domain.StateImpliesTryon(state)
			purchase := false
			if tryon {
				purchase = rc.src.Bool(rc.src.Float64Between(rc.cfg.TryonPurchaseRate.Min, rc.cfg.TryonPurchaseRate.Max))
			}

			startedAt := rc.src.SeasonalDate(rc.start, rc.now, rc.cfg.MonthlyWeights, rc.cfg.SeasonalAttempts)
			lastActivity := startedAt.Add(time.Duration(rc.src.IntBetween(5, 72*3600)) * time.Second)
			if lastActivity.After(rc.now) {
				lastActivity = rc.now
			}
			if lastActivity.Before(startedAt) {
				lastActivity = startedAt
			}

			conv := &domain.Conversation{
				ID:                 rc.src.UUID(),
				WorkspaceID:        ws.ID,
				AccountID:          account.ID,
				CustomerToken:      rc.src.Token("cust_", 16),
				State:              state,
				ResultedInTryon:    tryon,
				ResultedInPurchase: purchase,
				MessageCount:       rc.src.IntBetween(1, 40),
				LastMessagePreview: rc.maybeNull(random.Pick(rc.src, messagePreviews)),
				StartedAt:          startedAt,
				LastActivityAt:     lastActivity,
			}
			if err := conv.Validate(); err != nil {
				return err
			}

			rc.ds.Conversations = append(rc.ds.Conversations, conv)
			rc.lookups.ConversationsByWorkspace[ws.ID] = append(rc.lookups.ConversationsByWorkspace[ws.ID], conv)
			rc.lookups.ConversationByID[conv.ID] = conv
		}
	}
	return nil
}
