package domain

// Collection names, used as map keys in generator output and as file/table
// names by the exporters.
const (
	CollectionWorkspaces       = "workspaces"
	CollectionAccounts         = "accounts"
	CollectionProducts         = "products"
	CollectionVariants         = "product_variants"
	CollectionInventoryHistory = "inventory_history"
	CollectionPosts            = "posts"
	CollectionPostMetrics      = "post_metrics"
	CollectionBindings         = "garment_bindings"
	CollectionConversations    = "conversations"
	CollectionOrders           = "orders"
	CollectionJourneyEvents    = "customer_journey_events"
	CollectionDailyAggregates  = "daily_aggregates"
	CollectionProfiles         = "customer_profiles"
	CollectionForecasts        = "demand_forecasts"
)

// CollectionNames lists every collection in generation order.
func CollectionNames() []string {
	return []string{
		CollectionWorkspaces,
		CollectionAccounts,
		CollectionProducts,
		CollectionVariants,
		CollectionInventoryHistory,
		CollectionPosts,
		CollectionPostMetrics,
		CollectionBindings,
		CollectionConversations,
		CollectionOrders,
		CollectionJourneyEvents,
		CollectionDailyAggregates,
		CollectionProfiles,
		CollectionForecasts,
	}
}

// Dataset holds every generated collection in insertion order. Records are
// appended once during their stage and never mutated afterward.
type Dataset struct {
	Workspaces       []*Workspace
	Accounts         []*Account
	Products         []*Product
	Variants         []*ProductVariant
	InventoryHistory []*InventoryHistoryRecord
	Posts            []*Post
	PostMetrics      []*PostMetric
	Bindings         []*GarmentBinding
	Conversations    []*Conversation
	Orders           []*Order
	JourneyEvents    []*CustomerJourneyEvent
	DailyAggregates  []*DailyAggregate
	Profiles         []*CustomerProfile
	Forecasts        []*DemandForecast
}

// Counts returns the cardinality of every collection.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		CollectionWorkspaces:       len(d.Workspaces),
		CollectionAccounts:         len(d.Accounts),
		CollectionProducts:         len(d.Products),
		CollectionVariants:         len(d.Variants),
		CollectionInventoryHistory: len(d.InventoryHistory),
		CollectionPosts:            len(d.Posts),
		CollectionPostMetrics:      len(d.PostMetrics),
		CollectionBindings:         len(d.Bindings),
		CollectionConversations:    len(d.Conversations),
		CollectionOrders:           len(d.Orders),
		CollectionJourneyEvents:    len(d.JourneyEvents),
		CollectionDailyAggregates:  len(d.DailyAggregates),
		CollectionProfiles:         len(d.Profiles),
		CollectionForecasts:        len(d.Forecasts),
	}
}

// Collections returns every collection as a plain ordered record sequence
// keyed by collection name, the shape consumed by exporters.
func (d *Dataset) Collections() map[string][]any {
	out := make(map[string][]any, 14)
	out[CollectionWorkspaces] = toAny(d.Workspaces)
	out[CollectionAccounts] = toAny(d.Accounts)
	out[CollectionProducts] = toAny(d.Products)
	out[CollectionVariants] = toAny(d.Variants)
	out[CollectionInventoryHistory] = toAny(d.InventoryHistory)
	out[CollectionPosts] = toAny(d.Posts)
	out[CollectionPostMetrics] = toAny(d.PostMetrics)
	out[CollectionBindings] = toAny(d.Bindings)
	out[CollectionConversations] = toAny(d.Conversations)
	out[CollectionOrders] = toAny(d.Orders)
	out[CollectionJourneyEvents] = toAny(d.JourneyEvents)
	out[CollectionDailyAggregates] = toAny(d.DailyAggregates)
	out[CollectionProfiles] = toAny(d.Profiles)
	out[CollectionForecasts] = toAny(d.Forecasts)
	return out
}

func toAny[T any](records []*T) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

// Lookups index parent entities to their dependents. They are built
// incrementally as the pipeline runs and are append-only; later stages
// consult them instead of scanning collections linearly.
type Lookups struct {
	AccountByWorkspace       map[string]*Account
	ProductsByWorkspace      map[string][]*Product
	VariantsByProduct        map[string][]*ProductVariant
	PostsByWorkspace         map[string][]*Post
	BindingByPost            map[string]*GarmentBinding
	ConversationsByWorkspace map[string][]*Conversation
	ConversationByID         map[string]*Conversation
	ProductByID              map[string]*Product
	PostByID                 map[string]*Post
}

// NewLookups returns an empty lookup index.
func NewLookups() *Lookups {
	return &Lookups{
		AccountByWorkspace:       make(map[string]*Account),
		ProductsByWorkspace:      make(map[string][]*Product),
		VariantsByProduct:        make(map[string][]*ProductVariant),
		PostsByWorkspace:         make(map[string][]*Post),
		BindingByPost:            make(map[string]*GarmentBinding),
		ConversationsByWorkspace: make(map[string][]*Conversation),
		ConversationByID:         make(map[string]*Conversation),
		ProductByID:              make(map[string]*Product),
		PostByID:                 make(map[string]*Post),
	}
}
