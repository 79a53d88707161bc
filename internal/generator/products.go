package generator

import (
	"fmt"
	"math"

	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/pkg/random"
)

// generateProducts materializes the product catalog of every workspace.
func generateProducts(rc *runContext) error {
	for _, ws := range rc.ds.Workspaces {
		account := rc.lookups.AccountByWorkspace[ws.ID]
		if account == nil {
			return fmt.Errorf("workspace %s has no account", ws.ID)
		}

		for i := 0; i < rc.profile.ProductsPerWorkspace; i++ {
			category, err := random.Choice(rc.src, weightedValues(rc.cfg.Categories))
			if err != nil {
				return err
			}

			product := &domain.Product{
				ID:          rc.src.UUID(),
				WorkspaceID: ws.ID,
				AccountID:   account.ID,
				Name: random.Pick(rc.src, productAdjectives) + " " +
					random.Pick(rc.src, productNouns),
				Category:       category,
				PriceCents:     rc.src.IntBetween(rc.cfg.ProductPriceCents.Min, rc.cfg.ProductPriceCents.Max),
				Currency:       ws.Currency,
				TotalInventory: rc.src.IntBetween(rc.cfg.ProductInventory.Min, rc.cfg.ProductInventory.Max),
				CreatedAt:      rc.src.DateBetween(ws.CreatedAt, rc.now),
			}
			if err := product.Validate(); err != nil {
				return err
			}

			rc.ds.Products = append(rc.ds.Products, product)
			rc.lookups.ProductsByWorkspace[ws.ID] = append(rc.lookups.ProductsByWorkspace[ws.ID], product)
			rc.lookups.ProductByID[product.ID] = product
		}
	}
	return nil
}

// generateVariants materializes size/color variants for every product.
// Per-variant stock jitters around the even share of the product total, so
// the variant sum approximates but need not exactly equal TotalInventory.
func generateVariants(rc *runContext) error {
	for _, product := range rc.ds.Products {
		share := float64(product.TotalInventory) / float64(rc.profile.VariantsPerProduct)

		for i := 0; i < rc.profile.VariantsPerProduct; i++ {
			jitter := rc.src.Float64Between(1-rc.cfg.VariantJitter, 1+rc.cfg.VariantJitter)
			count := int(math.Round(share * jitter))
			if count < 0 {
				count = 0
			}

			size := variantSizes[i%len(variantSizes)]
			color := random.Pick(rc.src, variantColors)
			variant := &domain.ProductVariant{
				ID:             rc.src.UUID(),
				ProductID:      product.ID,
				SKU:            fmt.Sprintf("GRM-%s-%s-%d", size, rc.src.Token("", 6), i),
				Size:           size,
				Color:          color,
				InventoryCount: count,
				CreatedAt:      product.CreatedAt,
			}
			if err := variant.Validate(); err != nil {
				return err
			}

			rc.ds.Variants = append(rc.ds.Variants, variant)
			rc.lookups.VariantsByProduct[product.ID] = append(rc.lookups.VariantsByProduct[product.ID], variant)
		}
	}
	return nil
}

// generateInventoryHistory emits an append-only stock ledger per variant.
// The running stock is clamped to [0, InventoryMax]; attempts that do not
// move the clamped value produce no record, so cardinality here is
// value-dependent by design.
func generateInventoryHistory(rc *runContext) error {
	for _, variant := range rc.ds.Variants {
		currentStock := variant.InventoryCount
		occurredAt := rc.src.DateBetween(rc.start, rc.now)

		for i := 0; i < rc.profile.InventoryChangesPerVariant; i++ {
			reason := random.Pick(rc.src, inventoryReasons)
			delta := rc.src.IntBetween(-30, 40)
			if reason == "sale" || reason == "damage" {
				delta = -rc.src.IntBetween(1, 25)
			} else if reason == "restock" {
				delta = rc.src.IntBetween(10, 80)
			}

			next := currentStock + delta
			if next < 0 {
				next = 0
			}
			if next > rc.cfg.InventoryMax {
				next = rc.cfg.InventoryMax
			}
			if next == currentStock {
				continue
			}

			occurredAt = rc.src.DateBetween(occurredAt, rc.now)
			record := &domain.InventoryHistoryRecord{
				ID:               rc.src.UUID(),
				ProductID:        variant.ProductID,
				VariantID:        variant.ID,
				PreviousQuantity: currentStock,
				NewQuantity:      next,
				ChangeAmount:     next - currentStock,
				Reason:           reason,
				OccurredAt:       occurredAt,
			}
			if err := record.Validate(); err != nil {
				return err
			}

			rc.ds.InventoryHistory = append(rc.ds.InventoryHistory, record)
			currentStock = next
		}
	}
	return nil
}
