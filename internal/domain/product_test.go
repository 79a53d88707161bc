package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garmio/seedgen/internal/domain"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		wantErr bool
	}{
		{
			name: "valid product",
			product: domain.Product{
				ID: "prod-1", WorkspaceID: "ws-1", AccountID: "acc-1",
				Name: "Linen Wrap Dress", Category: "dresses",
				PriceCents: 8900, Currency: "USD", TotalInventory: 120,
			},
		},
		{
			name: "zero price",
			product: domain.Product{
				ID: "prod-1", WorkspaceID: "ws-1", AccountID: "acc-1", PriceCents: 0,
			},
			wantErr: true,
		},
		{
			name: "negative inventory",
			product: domain.Product{
				ID: "prod-1", WorkspaceID: "ws-1", AccountID: "acc-1",
				PriceCents: 100, TotalInventory: -5,
			},
			wantErr: true,
		},
		{
			name:    "missing workspace",
			product: domain.Product{ID: "prod-1", AccountID: "acc-1", PriceCents: 100},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventoryHistoryRecord_Validate(t *testing.T) {
	valid := domain.InventoryHistoryRecord{
		ID: "inv-1", ProductID: "prod-1", VariantID: "var-1",
		PreviousQuantity: 100, NewQuantity: 85, ChangeAmount: -15,
		Reason: "sale",
	}
	assert.NoError(t, valid.Validate())

	broken := valid
	broken.ChangeAmount = -10
	assert.Error(t, broken.Validate())

	noop := valid
	noop.NewQuantity = 100
	noop.ChangeAmount = 0
	assert.Error(t, noop.Validate())
}

func TestWorkspace_Validate(t *testing.T) {
	ws := domain.Workspace{ID: "ws-1", Name: "Thread & Hem", WebsiteURL: "https://threadandhem.example.com"}
	assert.NoError(t, ws.Validate())

	ws.WebsiteURL = "not a url"
	assert.Error(t, ws.Validate())

	ws = domain.Workspace{ID: "ws-1", Name: ""}
	assert.Error(t, ws.Validate())
}

func TestPostMetric_Validate(t *testing.T) {
	m := domain.PostMetric{
		ID: "pm-1", PostID: "post-1", DayIndex: 3,
		Reach: 500, Impressions: 900, Likes: 40, Comments: 5, Shares: 3, Saves: 2,
	}
	assert.NoError(t, m.Validate())

	m.Impressions = 400
	assert.Error(t, m.Validate(), "impressions below reach")
}
