package generator

import (
	"math"

	"github.com/garmio/seedgen/internal/domain"
)

const forecastModelVersion = "demand-lstm-v3.2"

// generateDemandForecasts emits one forecast per horizon for a fixed-size
// prefix of each workspace's products. Demand scales with the horizon and
// the confidence band widens with it.
func generateDemandForecasts(rc *runContext) error {
	for _, ws := range rc.ds.Workspaces {
		products := rc.lookups.ProductsByWorkspace[ws.ID]
		count := rc.profile.ForecastProductCount
		if count > len(products) {
			count = len(products)
		}

		for _, product := range products[:count] {
			baseDemand := rc.src.IntBetween(rc.cfg.ForecastBaseDemand.Min, rc.cfg.ForecastBaseDemand.Max)

			for _, horizon := range domain.ForecastHorizons {
				predicted := int(math.Round(float64(baseDemand) * float64(horizon) / 7.0))
				spread := int(math.Round(float64(predicted) * rc.src.Float64Between(0.10, 0.35)))

				low := predicted - spread
				if low < 0 {
					low = 0
				}

				forecast := &domain.DemandForecast{
					ID:          rc.src.UUID(),
					WorkspaceID: ws.ID,
					ProductID:   product.ID,

					HorizonDays:     horizon,
					PredictedDemand: predicted,
					ConfidenceLow:   low,
					ConfidenceHigh:  predicted + spread,
					ModelVersion:    forecastModelVersion,

					GeneratedAt: rc.now,
				}
				if err := forecast.Validate(); err != nil {
					return err
				}
				rc.ds.Forecasts = append(rc.ds.Forecasts, forecast)
			}
		}
	}
	return nil
}
