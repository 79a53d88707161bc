package domain

import (
	"fmt"
	"time"
)

// Journey event types, ordered roughly by funnel depth.
const (
	EventPostView    = "post_view"
	EventPostLike    = "post_like"
	EventPostComment = "post_comment"
	EventPostShare   = "post_share"
	EventDMOpen      = "dm_open"
	EventPhotoSent   = "photo_sent"
	EventTryonView   = "tryon_view"
	EventAddToCart   = "add_to_cart"
	EventPurchase    = "purchase"
)

// funnelStages maps each event type to its ordinal funnel stage
// (1 awareness .. 5 retention). The mapping is monotonically non-decreasing
// along any generated sequence.
var funnelStages = map[string]int{
	EventPostView:    1,
	EventPostLike:    2,
	EventPostComment: 2,
	EventPostShare:   2,
	EventDMOpen:      3,
	EventPhotoSent:   3,
	EventTryonView:   4,
	EventAddToCart:   4,
	EventPurchase:    5,
}

// FunnelStageFor returns the funnel stage of an event type, or an error
// for an unknown type.
func FunnelStageFor(eventType string) (int, error) {
	stage, ok := funnelStages[eventType]
	if !ok {
		return 0, fmt.Errorf("unknown journey event type %q", eventType)
	}
	return stage, nil
}

// CustomerJourneyEvent is one step of a simulated customer session.
// Events are strictly time-ordered within their session; exactly one event
// per session carries each of the first/last flags (the same event when
// the session has length 1).
type CustomerJourneyEvent struct {
	ID          string  `json:"id"`
	WorkspaceID string  `json:"workspace_id"`
	SessionID   string  `json:"session_id"`
	PostID      string  `json:"post_id"`
	ProductID   *string `json:"product_id"`

	EventType   string    `json:"event_type"`
	FunnelStage int       `json:"funnel_stage"`
	DeviceType  string    `json:"device_type"`
	Geography   string    `json:"geography"`
	EventAt     time.Time `json:"event_timestamp"`

	IsSessionFirstEvent bool `json:"is_session_first_event"`
	IsSessionLastEvent  bool `json:"is_session_last_event"`
}

// Validate validates a single event row.
func (e *CustomerJourneyEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("journey event id is required")
	}
	if e.WorkspaceID == "" || e.SessionID == "" {
		return fmt.Errorf("journey event workspace_id and session_id are required")
	}
	stage, err := FunnelStageFor(e.EventType)
	if err != nil {
		return err
	}
	if stage != e.FunnelStage {
		return fmt.Errorf("journey event funnel_stage %d does not match event type %q", e.FunnelStage, e.EventType)
	}
	return nil
}
