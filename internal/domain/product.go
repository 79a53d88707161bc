package domain

import (
	"fmt"
	"time"
)

// Product is a sellable garment owned by one workspace/account. Its
// TotalInventory is a sampled total; variant stock approximates it with
// intentional per-variant jitter.
type Product struct {
	ID             string    `json:"id"`
	WorkspaceID    string    `json:"workspace_id"`
	AccountID      string    `json:"account_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	PriceCents     int       `json:"price_cents"`
	Currency       string    `json:"currency"`
	TotalInventory int       `json:"total_inventory"`
	CreatedAt      time.Time `json:"created_at"`
}

// Validate validates the product.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.WorkspaceID == "" {
		return fmt.Errorf("product workspace_id is required")
	}
	if p.AccountID == "" {
		return fmt.Errorf("product account_id is required")
	}
	if p.PriceCents <= 0 {
		return fmt.Errorf("product price_cents must be > 0")
	}
	if p.TotalInventory < 0 {
		return fmt.Errorf("product total_inventory must be >= 0")
	}
	return nil
}

// ProductVariant is one size/color combination of a product with its own
// stock count.
type ProductVariant struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	SKU            string    `json:"sku"`
	Size           string    `json:"size"`
	Color          string    `json:"color"`
	InventoryCount int       `json:"inventory_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// Validate validates the variant.
func (v *ProductVariant) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("variant id is required")
	}
	if v.ProductID == "" {
		return fmt.Errorf("variant product_id is required")
	}
	if v.SKU == "" {
		return fmt.Errorf("variant sku is required")
	}
	if v.InventoryCount < 0 {
		return fmt.Errorf("variant inventory_count must be >= 0")
	}
	return nil
}

// InventoryHistoryRecord is an append-only stock ledger entry. A record is
// only written when an attempted change actually moved the clamped stock
// level.
type InventoryHistoryRecord struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	VariantID        string    `json:"variant_id"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	ChangeAmount     int       `json:"change_amount"`
	Reason           string    `json:"reason"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Validate checks the ledger arithmetic.
func (r *InventoryHistoryRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("inventory record id is required")
	}
	if r.VariantID == "" {
		return fmt.Errorf("inventory record variant_id is required")
	}
	if r.ChangeAmount != r.NewQuantity-r.PreviousQuantity {
		return fmt.Errorf("inventory record change_amount %d does not match %d - %d",
			r.ChangeAmount, r.NewQuantity, r.PreviousQuantity)
	}
	if r.ChangeAmount == 0 {
		return fmt.Errorf("inventory record must represent an effective change")
	}
	return nil
}
