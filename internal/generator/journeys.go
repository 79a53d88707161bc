package generator

import (
	"math"
	"time"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/pkg/random"
)

// generateJourneyEvents simulates customer sessions. Each session picks a
// post (weighted by its performance multiplier), a device and a geography,
// then samples one event sequence from the categorical distribution after
// reweighting it by the session's combined conversion multiplier. Events
// within a session advance a single clock, so they are strictly ordered.
func generateJourneyEvents(rc *runContext) error {
	devices := make([]random.Weighted[config.DeviceProfile], 0, len(rc.cfg.Devices))
	for _, d := range rc.cfg.Devices {
		devices = append(devices, random.Weighted[config.DeviceProfile]{Item: d, Weight: d.Weight})
	}
	geos := weightedValues(rc.cfg.Geographies)

	for _, ws := range rc.ds.Workspaces {
		posts := rc.lookups.PostsByWorkspace[ws.ID]
		if len(posts) == 0 {
			continue
		}

		postChoices := make([]random.Weighted[*domain.Post], 0, len(posts))
		for _, p := range posts {
			postChoices = append(postChoices, random.Weighted[*domain.Post]{
				Item:   p,
				Weight: rc.tiers.multiplier(p.ID),
			})
		}

		for i := 0; i < rc.profile.SessionsPerWorkspace; i++ {
			post, err := random.Choice(rc.src, postChoices)
			if err != nil {
				return err
			}
			device, err := random.Choice(rc.src, devices)
			if err != nil {
				return err
			}
			geo, err := random.Choice(rc.src, geos)
			if err != nil {
				return err
			}

			sessionStart := rc.sessionStart()
			multiplier := rc.sessionMultiplier(sessionStart, post.ID, device.ConversionMultiplier)

			bucket, err := rc.sampleSequence(multiplier)
			if err != nil {
				return err
			}

			sessionID := rc.src.Token("sess_", 16)
			clock := sessionStart
			for j, eventType := range bucket.Events {
				delay := rc.cfg.EventDelays[eventType]
				clock = clock.Add(time.Duration(rc.src.IntBetween(delay.Min, delay.Max)) * time.Second)

				stage, err := domain.FunnelStageFor(eventType)
				if err != nil {
					return err
				}

				event := &domain.CustomerJourneyEvent{
					ID:          rc.src.UUID(),
					WorkspaceID: ws.ID,
					SessionID:   sessionID,
					PostID:      post.ID,
					ProductID:   post.ProductID,

					EventType:   eventType,
					FunnelStage: stage,
					DeviceType:  device.Name,
					Geography:   geo,
					EventAt:     clock,

					IsSessionFirstEvent: j == 0,
					IsSessionLastEvent:  j == len(bucket.Events)-1,
				}
				if err := event.Validate(); err != nil {
					return err
				}
				rc.ds.JourneyEvents = append(rc.ds.JourneyEvents, event)
			}
		}
	}
	return nil
}

// sessionStart samples a seasonally biased day within the history window
// and places the session at an hour drawn from the hourly activity table.
func (rc *runContext) sessionStart() time.Time {
	day := rc.src.SeasonalDate(rc.start, rc.now, rc.cfg.MonthlyWeights, rc.cfg.SeasonalAttempts)
	hour := rc.src.HourOfDay(rc.cfg.HourlyWeights)
	t := time.Date(day.Year(), day.Month(), day.Day(), hour,
		rc.src.IntBetween(0, 59), rc.src.IntBetween(0, 59), 0, time.UTC)
	if t.After(rc.now) {
		t = rc.now
	}
	return t
}

// sessionMultiplier combines the seasonal, day-of-week, post-performance
// and device factors into one conversion multiplier, clamped to the
// configured band.
func (rc *runContext) sessionMultiplier(at time.Time, postID string, deviceMult float64) float64 {
	m := rc.cfg.MonthlyWeights[int(at.Month())-1]
	m *= rc.cfg.DayOfWeekMultipliers[int(at.Weekday())]
	m *= rc.tiers.multiplier(postID)
	m *= deviceMult

	if m < rc.cfg.MultiplierClamp.Min {
		m = rc.cfg.MultiplierClamp.Min
	}
	if m > rc.cfg.MultiplierClamp.Max {
		m = rc.cfg.MultiplierClamp.Max
	}
	return m
}

// sampleSequence draws one event sequence. A multiplier above 1 shifts
// probability mass toward deeper sequences and below 1 toward shallower
// ones; depth 3 is the pivot that keeps the reweighting symmetric.
func (rc *runContext) sampleSequence(multiplier float64) (config.SequenceBucket, error) {
	buckets := rc.cfg.SequenceBuckets
	weighted := make([]random.Weighted[config.SequenceBucket], 0, len(buckets))
	for _, b := range buckets {
		w := b.Probability * math.Pow(multiplier, float64(b.Depth-3)/2)
		weighted = append(weighted, random.Weighted[config.SequenceBucket]{Item: b, Weight: w})
	}
	return random.Choice(rc.src, weighted)
}
