package domain

import (
	"fmt"
	"time"
)

// Order is a purchase in a workspace, optionally attributed to the
// conversation and binding that produced it.
type Order struct {
	ID             string  `json:"id"`
	WorkspaceID    string  `json:"workspace_id"`
	AccountID      string  `json:"account_id"`
	ProductID      string  `json:"product_id"`
	ConversationID *string `json:"conversation_id"`
	BindingID      *string `json:"binding_id"`

	ItemCount       int     `json:"item_count"`
	SubtotalCents   int     `json:"subtotal_cents"`
	TaxCents        int     `json:"tax_cents"`
	ShippingCents   int     `json:"shipping_cents"`
	DiscountCents   int     `json:"discount_cents"`
	TotalPriceCents int     `json:"total_price_cents"`
	DiscountCode    *string `json:"discount_code"`

	Status    string    `json:"status"`
	OrderedAt time.Time `json:"ordered_at"`
}

// Validate checks the price arithmetic.
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("order id is required")
	}
	if o.WorkspaceID == "" || o.AccountID == "" {
		return fmt.Errorf("order workspace_id and account_id are required")
	}
	if o.ProductID == "" {
		return fmt.Errorf("order product_id is required")
	}
	if o.ItemCount <= 0 {
		return fmt.Errorf("order item_count must be > 0")
	}
	if total := o.SubtotalCents + o.TaxCents + o.ShippingCents - o.DiscountCents; total != o.TotalPriceCents {
		return fmt.Errorf("order total_price_cents %d does not match %d", o.TotalPriceCents, total)
	}
	if o.TotalPriceCents < 0 {
		return fmt.Errorf("order total_price_cents must be >= 0")
	}
	return nil
}
