package generator

import (
	"fmt"
	"strings"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/pkg/random"
)

// generateWorkspaces materializes the tenant roots and their single social
// account. Every later stage hangs off these two collections.
func generateWorkspaces(rc *runContext) error {
	for i := 0; i < rc.profile.Workspaces; i++ {
		word := random.Pick(rc.src, brandWords)
		suffix := random.Pick(rc.src, brandSuffixes)
		name := word + " " + suffix
		slug := strings.ToLower(word) + strings.ToLower(strings.NewReplacer(" ", "", "&", "and").Replace(suffix))

		ws := &domain.Workspace{
			ID:         rc.src.UUID(),
			Name:       name,
			WebsiteURL: fmt.Sprintf("https://%s.example.com", slug),
			Timezone:   random.Pick(rc.src, timezones),
			Currency:   "USD",
			CreatedAt:  rc.src.DateBetween(rc.start.AddDate(0, -6, 0), rc.start),
		}
		if err := ws.Validate(); err != nil {
			return err
		}
		rc.ds.Workspaces = append(rc.ds.Workspaces, ws)

		channel, err := random.Choice(rc.src, weightedValues(rc.cfg.Channels))
		if err != nil {
			return err
		}
		account := &domain.Account{
			ID:            rc.src.UUID(),
			WorkspaceID:   ws.ID,
			Channel:       channel,
			Handle:        "@" + slug,
			DisplayName:   name,
			FollowerCount: rc.src.IntBetween(1500, 250000),
			CreatedAt:     ws.CreatedAt,
		}
		if err := account.Validate(); err != nil {
			return err
		}
		rc.ds.Accounts = append(rc.ds.Accounts, account)
		rc.lookups.AccountByWorkspace[ws.ID] = account
	}
	return nil
}

// weightedValues adapts a config weighted table to the sampling primitive.
func weightedValues(table []config.WeightedValue) []random.Weighted[string] {
	out := make([]random.Weighted[string], len(table))
	for i, w := range table {
		out[i] = random.Weighted[string]{Item: w.Value, Weight: w.Weight}
	}
	return out
}
