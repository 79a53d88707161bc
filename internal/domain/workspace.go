package domain

import (
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// Workspace is the tenant root. Every other entity hangs off a workspace
// directly or through its account.
type Workspace struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	WebsiteURL string    `json:"website_url"`
	Timezone   string    `json:"timezone"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate validates the workspace.
func (w *Workspace) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("workspace id is required")
	}
	if w.Name == "" {
		return fmt.Errorf("workspace name is required")
	}
	if w.WebsiteURL != "" && !govalidator.IsURL(w.WebsiteURL) {
		return fmt.Errorf("invalid workspace website url: %s", w.WebsiteURL)
	}
	return nil
}

// Account is the social channel identity of a workspace. Exactly one per
// workspace in this design.
type Account struct {
	ID            string    `json:"id"`
	WorkspaceID   string    `json:"workspace_id"`
	Channel       string    `json:"channel"`
	Handle        string    `json:"handle"`
	DisplayName   string    `json:"display_name"`
	FollowerCount int       `json:"follower_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate validates the account.
func (a *Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account id is required")
	}
	if a.WorkspaceID == "" {
		return fmt.Errorf("account workspace_id is required")
	}
	if a.Channel == "" {
		return fmt.Errorf("account channel is required")
	}
	if a.FollowerCount < 0 {
		return fmt.Errorf("account follower_count must be >= 0")
	}
	return nil
}
