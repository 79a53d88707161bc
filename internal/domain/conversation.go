package domain

import (
	"fmt"
	"time"
)

// Conversation lifecycle states. Generation samples one state per
// conversation; transitions are not replayed. "abandoned" is reachable
// from any non-completed state.
const (
	ConversationStateInitial          = "initial"
	ConversationStateGreetingSent     = "greeting_sent"
	ConversationStateAwaitingResponse = "awaiting_response"
	ConversationStatePhotoRequested   = "photo_requested"
	ConversationStateAwaitingPhoto    = "awaiting_photo"
	ConversationStateProcessingTryon  = "processing_tryon"
	ConversationStateResultSent       = "result_sent"
	ConversationStateCompleted        = "completed"
	ConversationStateAbandoned        = "abandoned"
)

// StateImpliesTryon reports whether a sampled state means the customer's
// try-on was generated.
func StateImpliesTryon(state string) bool {
	switch state {
	case ConversationStateProcessingTryon, ConversationStateResultSent, ConversationStateCompleted:
		return true
	}
	return false
}

// Conversation is a DM thread between a workspace's account and a
// customer. The customer token is an opaque synthetic identifier,
// regenerated per conversation with only probabilistic collision
// avoidance.
type Conversation struct {
	ID                 string    `json:"id"`
	WorkspaceID        string    `json:"workspace_id"`
	AccountID          string    `json:"account_id"`
	CustomerToken      string    `json:"customer_token"`
	State              string    `json:"conversation_state"`
	ResultedInTryon    bool      `json:"resulted_in_tryon"`
	ResultedInPurchase bool      `json:"resulted_in_purchase"`
	MessageCount       int       `json:"message_count"`
	LastMessagePreview *string   `json:"last_message_preview"`
	StartedAt          time.Time `json:"started_at"`
	LastActivityAt     time.Time `json:"last_activity_at"`
}

// Validate checks the lifecycle implications: a purchase implies a try-on,
// and a completed conversation implies a try-on.
func (c *Conversation) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("conversation id is required")
	}
	if c.WorkspaceID == "" || c.AccountID == "" {
		return fmt.Errorf("conversation workspace_id and account_id are required")
	}
	if c.CustomerToken == "" {
		return fmt.Errorf("conversation customer_token is required")
	}
	if c.ResultedInPurchase && !c.ResultedInTryon {
		return fmt.Errorf("conversation resulted_in_purchase requires resulted_in_tryon")
	}
	if StateImpliesTryon(c.State) && !c.ResultedInTryon {
		return fmt.Errorf("conversation state %q requires resulted_in_tryon", c.State)
	}
	if c.LastActivityAt.Before(c.StartedAt) {
		return fmt.Errorf("conversation last_activity_at precedes started_at")
	}
	return nil
}
