package generator_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/internal/generator"
	"github.com/garmio/seedgen/pkg/logger"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func generateSmall(t *testing.T, seed int64) *domain.Dataset {
	t.Helper()

	profile, err := config.ProfileByName("small")
	require.NoError(t, err)

	g := generator.New(
		logger.NewTestLogger(t),
		config.DefaultGenerationConfig(),
		generator.WithSeed(seed),
		generator.WithNow(testNow),
	)
	ds, err := g.Generate(profile)
	require.NoError(t, err)
	return ds
}

func TestGenerateSmallProfileCardinality(t *testing.T) {
	ds := generateSmall(t, 42)
	counts := ds.Counts()

	// small: 2 workspaces, 10 products, 3 variants, 12 posts, 40
	// conversations, 25 orders, 30 days, 5 forecast products.
	assert.Equal(t, 2, counts[domain.CollectionWorkspaces])
	assert.Equal(t, 2, counts[domain.CollectionAccounts])
	assert.Equal(t, 20, counts[domain.CollectionProducts])
	assert.Equal(t, 60, counts[domain.CollectionVariants])
	assert.Equal(t, 24, counts[domain.CollectionPosts])
	// 12 posts * 0.6 product link rate rounds to 7 bindings per workspace.
	assert.Equal(t, 14, counts[domain.CollectionBindings])
	// One metric row per post per day, 30 days of history under the cap.
	assert.Equal(t, 24*30, counts[domain.CollectionPostMetrics])
	assert.Equal(t, 80, counts[domain.CollectionConversations])
	assert.Equal(t, 50, counts[domain.CollectionOrders])
	// Per day: one workspace row plus one sampled product row.
	assert.Equal(t, 2*30*2, counts[domain.CollectionDailyAggregates])
	// 5 forecast products, 3 horizons each.
	assert.Equal(t, 2*5*3, counts[domain.CollectionForecasts])

	// Ledger rows and journey events depend on sampled values; they must
	// exist but their exact count is not fixed by the profile.
	assert.Greater(t, counts[domain.CollectionInventoryHistory], 0)
	assert.Greater(t, counts[domain.CollectionJourneyEvents], 0)
	assert.Greater(t, counts[domain.CollectionProfiles], 0)
}

func TestGenerateCardinalityStableAcrossSeeds(t *testing.T) {
	a := generateSmall(t, 1).Counts()
	b := generateSmall(t, 9999).Counts()

	// Collections with profile-derived counts must not vary with the seed.
	for _, name := range []string{
		domain.CollectionWorkspaces,
		domain.CollectionAccounts,
		domain.CollectionProducts,
		domain.CollectionVariants,
		domain.CollectionPosts,
		domain.CollectionPostMetrics,
		domain.CollectionBindings,
		domain.CollectionConversations,
		domain.CollectionOrders,
		domain.CollectionDailyAggregates,
		domain.CollectionForecasts,
	} {
		assert.Equal(t, a[name], b[name], "collection %s", name)
	}
}

func TestGenerateSeededReproducibility(t *testing.T) {
	a := generateSmall(t, 7)
	b := generateSmall(t, 7)

	require.True(t, reflect.DeepEqual(a, b), "same seed must reproduce the dataset exactly")

	c := generateSmall(t, 8)
	assert.NotEqual(t, a.Workspaces[0].ID, c.Workspaces[0].ID, "different seeds must diverge")
}

func TestGenerateReferentialIntegrity(t *testing.T) {
	ds := generateSmall(t, 42)

	workspaces := make(map[string]bool)
	for _, ws := range ds.Workspaces {
		workspaces[ws.ID] = true
	}
	accounts := make(map[string]string)
	for _, a := range ds.Accounts {
		require.True(t, workspaces[a.WorkspaceID], "account %s has unknown workspace", a.ID)
		accounts[a.ID] = a.WorkspaceID
	}
	products := make(map[string]*domain.Product)
	for _, p := range ds.Products {
		require.True(t, workspaces[p.WorkspaceID])
		require.Equal(t, p.WorkspaceID, accounts[p.AccountID])
		products[p.ID] = p
	}
	variants := make(map[string]*domain.ProductVariant)
	for _, v := range ds.Variants {
		require.Contains(t, products, v.ProductID)
		variants[v.ID] = v
	}
	for _, rec := range ds.InventoryHistory {
		v, ok := variants[rec.VariantID]
		require.True(t, ok, "ledger row %s has unknown variant", rec.ID)
		require.Equal(t, v.ProductID, rec.ProductID)
	}
	posts := make(map[string]*domain.Post)
	for _, p := range ds.Posts {
		require.True(t, workspaces[p.WorkspaceID])
		if p.ProductID != nil {
			require.Contains(t, products, *p.ProductID)
		}
		posts[p.ID] = p
	}
	for _, m := range ds.PostMetrics {
		require.Contains(t, posts, m.PostID)
	}
	bindings := make(map[string]*domain.GarmentBinding)
	for _, b := range ds.Bindings {
		post, ok := posts[b.PostID]
		require.True(t, ok)
		require.Equal(t, post.WorkspaceID, b.WorkspaceID)
		require.NotNil(t, post.ProductID)
		require.Equal(t, *post.ProductID, b.ProductID)
		bindings[b.ID] = b
	}
	conversations := make(map[string]*domain.Conversation)
	for _, c := range ds.Conversations {
		require.True(t, workspaces[c.WorkspaceID])
		conversations[c.ID] = c
	}
	for _, o := range ds.Orders {
		require.True(t, workspaces[o.WorkspaceID])
		require.Contains(t, products, o.ProductID)
		if o.ConversationID != nil {
			conv, ok := conversations[*o.ConversationID]
			require.True(t, ok)
			require.True(t, conv.ResultedInPurchase, "attributed order must point at a purchase conversation")
		}
		if o.BindingID != nil {
			b, ok := bindings[*o.BindingID]
			require.True(t, ok)
			require.Equal(t, b.ProductID, o.ProductID, "binding-attributed order must buy the bound product")
		}
	}
	for _, e := range ds.JourneyEvents {
		post, ok := posts[e.PostID]
		require.True(t, ok)
		require.Equal(t, post.WorkspaceID, e.WorkspaceID)
		if e.ProductID != nil {
			require.NotNil(t, post.ProductID)
			require.Equal(t, *post.ProductID, *e.ProductID)
		}
	}
	for _, a := range ds.DailyAggregates {
		require.True(t, workspaces[a.WorkspaceID])
		if a.ProductID != nil {
			require.Contains(t, products, *a.ProductID)
		}
	}
	for _, p := range ds.Profiles {
		require.True(t, workspaces[p.WorkspaceID])
	}
	for _, f := range ds.Forecasts {
		product, ok := products[f.ProductID]
		require.True(t, ok)
		require.Equal(t, product.WorkspaceID, f.WorkspaceID)
	}
}

func TestGenerateFunnelMonotonicityAndRates(t *testing.T) {
	ds := generateSmall(t, 42)
	require.NotEmpty(t, ds.Bindings)

	for _, b := range ds.Bindings {
		assert.GreaterOrEqual(t, b.TotalTriggers, b.TotalDMConversations)
		assert.GreaterOrEqual(t, b.TotalDMConversations, b.TotalPhotoRequests)
		assert.GreaterOrEqual(t, b.TotalPhotoRequests, b.TotalPhotosReceived)
		assert.GreaterOrEqual(t, b.TotalPhotosReceived, b.TotalGenerations)
		assert.GreaterOrEqual(t, b.TotalGenerations, b.SuccessfulGenerations)
		assert.GreaterOrEqual(t, b.SuccessfulGenerations, b.TotalPurchases)

		for _, rate := range []float64{
			b.TriggerToDMRate, b.DMToPhotoRate, b.PhotoToSuccessRate, b.OverallConversionRate,
		} {
			assert.GreaterOrEqual(t, rate, 0.0)
			assert.LessOrEqual(t, rate, 100.0)
		}
	}
}

func TestGenerateInventoryLedger(t *testing.T) {
	ds := generateSmall(t, 42)
	require.NotEmpty(t, ds.InventoryHistory)

	lastQuantity := make(map[string]int)
	for _, v := range ds.Variants {
		lastQuantity[v.ID] = v.InventoryCount
	}

	for _, rec := range ds.InventoryHistory {
		assert.Equal(t, rec.NewQuantity-rec.PreviousQuantity, rec.ChangeAmount)
		assert.NotZero(t, rec.ChangeAmount, "ledger rows must represent an effective change")
		assert.GreaterOrEqual(t, rec.NewQuantity, 0)
		assert.LessOrEqual(t, rec.NewQuantity, 500)

		// Records are emitted in order per variant, chaining previous to
		// new quantity without gaps.
		assert.Equal(t, lastQuantity[rec.VariantID], rec.PreviousQuantity)
		lastQuantity[rec.VariantID] = rec.NewQuantity
	}
}

func TestGenerateVariantInventoryEnvelope(t *testing.T) {
	ds := generateSmall(t, 42)

	byProduct := make(map[string]int)
	for _, v := range ds.Variants {
		byProduct[v.ProductID] += v.InventoryCount
	}
	for _, p := range ds.Products {
		// Per-variant stock jitters +/-10% around the even share, so the
		// sum approximates the product total within the jitter envelope
		// plus rounding slack.
		slack := 0.1*float64(p.TotalInventory) + 3
		assert.InDelta(t, p.TotalInventory, byProduct[p.ID], slack, "product %s", p.ID)
	}
}

func TestGenerateConversationFlags(t *testing.T) {
	ds := generateSmall(t, 42)
	require.NotEmpty(t, ds.Conversations)

	for _, c := range ds.Conversations {
		if c.ResultedInPurchase {
			assert.True(t, c.ResultedInTryon, "purchase without try-on in conversation %s", c.ID)
		}
		assert.Equal(t, domain.StateImpliesTryon(c.State), c.ResultedInTryon,
			"try-on flag must follow the state for conversation %s", c.ID)
		assert.False(t, c.LastActivityAt.Before(c.StartedAt))
	}
}

func TestGenerateJourneySessions(t *testing.T) {
	ds := generateSmall(t, 42)
	require.NotEmpty(t, ds.JourneyEvents)

	type sessionCheck struct {
		firsts, lasts int
		lastSeen      time.Time
		lastStage     int
		lastIndex     int
	}
	sessions := make(map[string]*sessionCheck)

	for i, e := range ds.JourneyEvents {
		st, ok := sessions[e.SessionID]
		if !ok {
			st = &sessionCheck{lastIndex: -1}
			sessions[e.SessionID] = st
		}

		if e.IsSessionFirstEvent {
			st.firsts++
		}
		if e.IsSessionLastEvent {
			st.lasts++
		}

		if st.lastIndex >= 0 {
			// Sessions are emitted contiguously with a strictly advancing
			// clock and non-decreasing funnel depth.
			assert.Equal(t, st.lastIndex, i-1, "session %s is interleaved", e.SessionID)
			assert.False(t, e.EventAt.Before(st.lastSeen), "session %s events out of order", e.SessionID)
			assert.GreaterOrEqual(t, e.FunnelStage, st.lastStage)
		}
		st.lastSeen = e.EventAt
		st.lastStage = e.FunnelStage
		st.lastIndex = i
	}

	for id, st := range sessions {
		assert.Equal(t, 1, st.firsts, "session %s first-event flags", id)
		assert.Equal(t, 1, st.lasts, "session %s last-event flags", id)
	}
}

func TestGenerateCustomerProfiles(t *testing.T) {
	ds := generateSmall(t, 42)

	tokens := make(map[string]bool)
	for _, c := range ds.Conversations {
		tokens[c.CustomerToken] = true
	}
	require.Len(t, ds.Profiles, len(tokens), "one profile per distinct customer token")

	purchasesByToken := make(map[string]int)
	revenueByToken := make(map[string]int)
	convByID := make(map[string]*domain.Conversation)
	for _, c := range ds.Conversations {
		convByID[c.ID] = c
	}
	for _, o := range ds.Orders {
		if o.ConversationID == nil {
			continue
		}
		token := convByID[*o.ConversationID].CustomerToken
		purchasesByToken[token]++
		revenueByToken[token] += o.TotalPriceCents
	}

	for _, p := range ds.Profiles {
		assert.Equal(t, purchasesByToken[p.CustomerToken], p.TotalPurchases)
		assert.Equal(t, revenueByToken[p.CustomerToken], p.TotalRevenueCents)

		// The decision table is deterministic over the accumulated stats.
		switch {
		case p.TotalPurchases >= 3 || p.TotalRevenueCents > 30000:
			assert.Equal(t, domain.SegmentHighValue, p.Segment)
		case p.TotalPurchases >= 1:
			assert.Equal(t, domain.SegmentRegular, p.Segment)
		case p.DaysSinceLastActivity > 60:
			assert.Equal(t, domain.SegmentChurned, p.Segment)
		case p.DaysSinceLastActivity > 30:
			assert.Equal(t, domain.SegmentAtRisk, p.Segment)
		default:
			assert.Equal(t, domain.SegmentCasual, p.Segment)
		}

		assert.GreaterOrEqual(t, p.ChurnProbability, 0.0)
		assert.LessOrEqual(t, p.ChurnProbability, 1.0)
		assert.GreaterOrEqual(t, p.NextPurchaseProbability, 0.0)
		assert.LessOrEqual(t, p.NextPurchaseProbability, 1.0)
	}
}

func TestGenerateOrderArithmetic(t *testing.T) {
	ds := generateSmall(t, 42)
	require.NotEmpty(t, ds.Orders)

	for _, o := range ds.Orders {
		assert.Equal(t, o.SubtotalCents+o.TaxCents+o.ShippingCents-o.DiscountCents, o.TotalPriceCents)
		assert.GreaterOrEqual(t, o.TotalPriceCents, 0)
		assert.Greater(t, o.ItemCount, 0)
		if o.DiscountCents == 0 {
			assert.Nil(t, o.DiscountCode)
		}
	}
}

func TestGenerateForecasts(t *testing.T) {
	ds := generateSmall(t, 42)
	require.NotEmpty(t, ds.Forecasts)

	perProduct := make(map[string][]int)
	for _, f := range ds.Forecasts {
		assert.Contains(t, domain.ForecastHorizons, f.HorizonDays)
		assert.LessOrEqual(t, f.ConfidenceLow, f.PredictedDemand)
		assert.LessOrEqual(t, f.PredictedDemand, f.ConfidenceHigh)
		assert.Nil(t, f.ActualDemand)
		assert.Nil(t, f.ForecastError)
		assert.NotEmpty(t, f.ModelVersion)
		perProduct[f.ProductID] = append(perProduct[f.ProductID], f.HorizonDays)
	}
	for productID, horizons := range perProduct {
		assert.ElementsMatch(t, domain.ForecastHorizons, horizons, "product %s", productID)
	}
}

func TestGeneratePostMetrics(t *testing.T) {
	ds := generateSmall(t, 42)
	require.NotEmpty(t, ds.PostMetrics)

	for _, m := range ds.PostMetrics {
		assert.GreaterOrEqual(t, m.Impressions, m.Reach, "impressions can never undercut reach")
		engagements := m.Likes + m.Comments + m.Shares + m.Saves
		assert.GreaterOrEqual(t, engagements, 0)
		assert.GreaterOrEqual(t, m.Saves, 0)
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	log := logger.NewTestLogger(t)

	t.Run("invalid profile", func(t *testing.T) {
		g := generator.New(log, config.DefaultGenerationConfig(), generator.WithSeed(1))
		_, err := g.Generate(config.ScaleProfile{Name: "empty"})
		require.Error(t, err)
	})

	t.Run("zero weight table", func(t *testing.T) {
		cfg := config.DefaultGenerationConfig()
		for i := range cfg.Channels {
			cfg.Channels[i].Weight = 0
		}
		profile, err := config.ProfileByName("small")
		require.NoError(t, err)

		g := generator.New(log, cfg, generator.WithSeed(1))
		_, err = g.Generate(profile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zero total weight")
	})
}
