package export

import (
	"fmt"

	"github.com/garmio/seedgen/internal/domain"
)

// Table is the export-side schema of one collection: its column names and
// a row extractor turning a record into values in column order. All file
// formats and the Postgres loader share the same Table, so they cannot
// drift apart.
type Table struct {
	Name    string
	Columns []string
	row     func(record any) ([]any, error)
}

// Row extracts one record's values in column order.
func (t Table) Row(record any) ([]any, error) {
	values, err := t.row(record)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", t.Name, err)
	}
	if len(values) != len(t.Columns) {
		return nil, fmt.Errorf("table %s: row has %d values for %d columns", t.Name, len(values), len(t.Columns))
	}
	return values, nil
}

func rowFn[T any](extract func(*T) []any) func(any) ([]any, error) {
	return func(record any) ([]any, error) {
		v, ok := record.(*T)
		if !ok {
			return nil, fmt.Errorf("unexpected record type %T", record)
		}
		return extract(v), nil
	}
}

// Tables returns the full table registry in generation order.
func Tables() []Table {
	return []Table{
		{
			Name:    domain.CollectionWorkspaces,
			Columns: []string{"id", "name", "website_url", "timezone", "currency", "created_at"},
			row: rowFn(func(w *domain.Workspace) []any {
				return []any{w.ID, w.Name, w.WebsiteURL, w.Timezone, w.Currency, w.CreatedAt}
			}),
		},
		{
			Name:    domain.CollectionAccounts,
			Columns: []string{"id", "workspace_id", "channel", "handle", "display_name", "follower_count", "created_at"},
			row: rowFn(func(a *domain.Account) []any {
				return []any{a.ID, a.WorkspaceID, a.Channel, a.Handle, a.DisplayName, a.FollowerCount, a.CreatedAt}
			}),
		},
		{
			Name: domain.CollectionProducts,
			Columns: []string{
				"id", "workspace_id", "account_id", "name", "category",
				"price_cents", "currency", "total_inventory", "created_at",
			},
			row: rowFn(func(p *domain.Product) []any {
				return []any{
					p.ID, p.WorkspaceID, p.AccountID, p.Name, p.Category,
					p.PriceCents, p.Currency, p.TotalInventory, p.CreatedAt,
				}
			}),
		},
		{
			Name:    domain.CollectionVariants,
			Columns: []string{"id", "product_id", "sku", "size", "color", "inventory_count", "created_at"},
			row: rowFn(func(v *domain.ProductVariant) []any {
				return []any{v.ID, v.ProductID, v.SKU, v.Size, v.Color, v.InventoryCount, v.CreatedAt}
			}),
		},
		{
			Name: domain.CollectionInventoryHistory,
			Columns: []string{
				"id", "product_id", "variant_id", "previous_quantity",
				"new_quantity", "change_amount", "reason", "occurred_at",
			},
			row: rowFn(func(r *domain.InventoryHistoryRecord) []any {
				return []any{
					r.ID, r.ProductID, r.VariantID, r.PreviousQuantity,
					r.NewQuantity, r.ChangeAmount, r.Reason, r.OccurredAt,
				}
			}),
		},
		{
			Name:    domain.CollectionPosts,
			Columns: []string{"id", "workspace_id", "account_id", "product_id", "caption", "performance_tier", "posted_at"},
			row: rowFn(func(p *domain.Post) []any {
				return []any{p.ID, p.WorkspaceID, p.AccountID, p.ProductID, p.Caption, p.PerformanceTier, p.PostedAt}
			}),
		},
		{
			Name: domain.CollectionPostMetrics,
			Columns: []string{
				"id", "post_id", "day_index", "metric_date", "reach",
				"impressions", "likes", "comments", "shares", "saves",
			},
			row: rowFn(func(m *domain.PostMetric) []any {
				return []any{
					m.ID, m.PostID, m.DayIndex, m.MetricDate, m.Reach,
					m.Impressions, m.Likes, m.Comments, m.Shares, m.Saves,
				}
			}),
		},
		{
			Name: domain.CollectionBindings,
			Columns: []string{
				"id", "workspace_id", "post_id", "product_id",
				"total_triggers", "total_dm_conversations", "total_photo_requests",
				"total_photos_received", "total_generations", "successful_generations",
				"total_purchases", "trigger_to_dm_rate", "dm_to_photo_rate",
				"photo_to_success_rate", "overall_conversion_rate",
				"total_revenue_cents", "created_at",
			},
			row: rowFn(func(b *domain.GarmentBinding) []any {
				return []any{
					b.ID, b.WorkspaceID, b.PostID, b.ProductID,
					b.TotalTriggers, b.TotalDMConversations, b.TotalPhotoRequests,
					b.TotalPhotosReceived, b.TotalGenerations, b.SuccessfulGenerations,
					b.TotalPurchases, b.TriggerToDMRate, b.DMToPhotoRate,
					b.PhotoToSuccessRate, b.OverallConversionRate,
					b.TotalRevenueCents, b.CreatedAt,
				}
			}),
		},
		{
			Name: domain.CollectionConversations,
			Columns: []string{
				"id", "workspace_id", "account_id", "customer_token",
				"conversation_state", "resulted_in_tryon", "resulted_in_purchase",
				"message_count", "last_message_preview", "started_at", "last_activity_at",
			},
			row: rowFn(func(c *domain.Conversation) []any {
				return []any{
					c.ID, c.WorkspaceID, c.AccountID, c.CustomerToken,
					c.State, c.ResultedInTryon, c.ResultedInPurchase,
					c.MessageCount, c.LastMessagePreview, c.StartedAt, c.LastActivityAt,
				}
			}),
		},
		{
			Name: domain.CollectionOrders,
			Columns: []string{
				"id", "workspace_id", "account_id", "product_id",
				"conversation_id", "binding_id", "item_count", "subtotal_cents",
				"tax_cents", "shipping_cents", "discount_cents", "total_price_cents",
				"discount_code", "status", "ordered_at",
			},
			row: rowFn(func(o *domain.Order) []any {
				return []any{
					o.ID, o.WorkspaceID, o.AccountID, o.ProductID,
					o.ConversationID, o.BindingID, o.ItemCount, o.SubtotalCents,
					o.TaxCents, o.ShippingCents, o.DiscountCents, o.TotalPriceCents,
					o.DiscountCode, o.Status, o.OrderedAt,
				}
			}),
		},
		{
			Name: domain.CollectionJourneyEvents,
			Columns: []string{
				"id", "workspace_id", "session_id", "post_id", "product_id",
				"event_type", "funnel_stage", "device_type", "geography",
				"event_timestamp", "is_session_first_event", "is_session_last_event",
			},
			row: rowFn(func(e *domain.CustomerJourneyEvent) []any {
				return []any{
					e.ID, e.WorkspaceID, e.SessionID, e.PostID, e.ProductID,
					e.EventType, e.FunnelStage, e.DeviceType, e.Geography,
					e.EventAt, e.IsSessionFirstEvent, e.IsSessionLastEvent,
				}
			}),
		},
		{
			Name: domain.CollectionDailyAggregates,
			Columns: []string{
				"workspace_id", "product_id", "metric_date",
				"impressions", "engagements", "conversations", "orders", "revenue_cents",
			},
			row: rowFn(func(a *domain.DailyAggregate) []any {
				return []any{
					a.WorkspaceID, a.ProductID, a.MetricDate,
					a.Impressions, a.Engagements, a.Conversations, a.Orders, a.RevenueCents,
				}
			}),
		},
		{
			Name: domain.CollectionProfiles,
			Columns: []string{
				"customer_token", "workspace_id", "segment", "total_purchases",
				"total_revenue_cents", "tryon_count", "days_since_last_activity",
				"churn_probability", "next_purchase_probability", "predicted_ltv_cents",
				"first_seen_at",
			},
			row: rowFn(func(p *domain.CustomerProfile) []any {
				return []any{
					p.CustomerToken, p.WorkspaceID, p.Segment, p.TotalPurchases,
					p.TotalRevenueCents, p.TryonCount, p.DaysSinceLastActivity,
					p.ChurnProbability, p.NextPurchaseProbability, p.PredictedLTVCents,
					p.FirstSeenAt,
				}
			}),
		},
		{
			Name: domain.CollectionForecasts,
			Columns: []string{
				"id", "workspace_id", "product_id", "horizon_days",
				"predicted_demand", "confidence_low", "confidence_high",
				"model_version", "actual_demand", "forecast_error", "generated_at",
			},
			row: rowFn(func(f *domain.DemandForecast) []any {
				return []any{
					f.ID, f.WorkspaceID, f.ProductID, f.HorizonDays,
					f.PredictedDemand, f.ConfidenceLow, f.ConfidenceHigh,
					f.ModelVersion, f.ActualDemand, f.ForecastError, f.GeneratedAt,
				}
			}),
		},
	}
}
