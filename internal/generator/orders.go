package generator

import (
	"math"

	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/pkg/random"
)

// generateOrders materializes purchases per workspace. Orders are
// attributed to purchase conversations while any remain unclaimed; an
// attributed order drawn through a binding buys that binding's product so
// the funnel, the conversation and the order line up.
func generateOrders(rc *runContext) error {
	for _, ws := range rc.ds.Workspaces {
		account := rc.lookups.AccountByWorkspace[ws.ID]
		products := rc.lookups.ProductsByWorkspace[ws.ID]

		var purchaseConvs []*domain.Conversation
		for _, conv := range rc.lookups.ConversationsByWorkspace[ws.ID] {
			if conv.ResultedInPurchase {
				purchaseConvs = append(purchaseConvs, conv)
			}
		}

		var bindings []*domain.GarmentBinding
		for _, post := range rc.lookups.PostsByWorkspace[ws.ID] {
			if b, ok := rc.lookups.BindingByPost[post.ID]; ok {
				bindings = append(bindings, b)
			}
		}

		for i := 0; i < rc.profile.OrdersPerWorkspace; i++ {
			product := random.Pick(rc.src, products)

			order := &domain.Order{
				ID:          rc.src.UUID(),
				WorkspaceID: ws.ID,
				AccountID:   account.ID,
			}

			if i < len(purchaseConvs) {
				conv := purchaseConvs[i]
				order.ConversationID = &conv.ID
				if len(bindings) > 0 {
					binding := random.Pick(rc.src, bindings)
					order.BindingID = &binding.ID
					product = rc.lookups.ProductByID[binding.ProductID]
				}
			}

			order.ProductID = product.ID
			order.ItemCount = rc.src.IntBetween(rc.cfg.OrderItems.Min, rc.cfg.OrderItems.Max)
			order.SubtotalCents = product.PriceCents * order.ItemCount
			order.TaxCents = int(math.Round(float64(order.SubtotalCents) * rc.src.Float64Between(rc.cfg.OrderTaxRate.Min, rc.cfg.OrderTaxRate.Max)))
			order.ShippingCents = rc.src.IntBetween(rc.cfg.OrderShippingCents.Min, rc.cfg.OrderShippingCents.Max)

			if rc.src.Bool(rc.cfg.OrderDiscountChance) {
				order.DiscountCents = rc.src.IntBetween(rc.cfg.OrderDiscountCents.Min, rc.cfg.OrderDiscountCents.Max)
				if order.DiscountCents > order.SubtotalCents {
					order.DiscountCents = order.SubtotalCents
				}
				order.DiscountCode = rc.maybeNull(random.Pick(rc.src, discountCodes))
			}
			order.TotalPriceCents = order.SubtotalCents + order.TaxCents + order.ShippingCents - order.DiscountCents

			status, err := random.Choice(rc.src, weightedValues(rc.cfg.OrderStatuses))
			if err != nil {
				return err
			}
			order.Status = status
			order.OrderedAt = rc.src.SeasonalDate(rc.start, rc.now, rc.cfg.MonthlyWeights, rc.cfg.SeasonalAttempts)

			if err := order.Validate(); err != nil {
				return err
			}
			rc.ds.Orders = append(rc.ds.Orders, order)
		}
	}
	return nil
}
