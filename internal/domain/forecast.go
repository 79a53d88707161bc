package domain

import (
	"fmt"
	"time"
)

// ForecastHorizons are the prediction windows generated per sampled
// product.
var ForecastHorizons = []int{7, 14, 30}

// DemandForecast is a synthetic model-output row. ActualDemand and
// ForecastError are never back-filled: forecasts are not reconciled
// against realized orders.
type DemandForecast struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	ProductID   string `json:"product_id"`

	HorizonDays     int    `json:"horizon_days"`
	PredictedDemand int    `json:"predicted_demand"`
	ConfidenceLow   int    `json:"confidence_low"`
	ConfidenceHigh  int    `json:"confidence_high"`
	ModelVersion    string `json:"model_version"`

	ActualDemand  *int     `json:"actual_demand"`
	ForecastError *float64 `json:"forecast_error"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Validate validates the forecast row.
func (f *DemandForecast) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("forecast id is required")
	}
	if f.ProductID == "" {
		return fmt.Errorf("forecast product_id is required")
	}
	valid := false
	for _, h := range ForecastHorizons {
		if f.HorizonDays == h {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("forecast horizon_days %d is not one of %v", f.HorizonDays, ForecastHorizons)
	}
	if f.ConfidenceLow > f.PredictedDemand || f.PredictedDemand > f.ConfidenceHigh {
		return fmt.Errorf("forecast confidence band [%d, %d] does not contain prediction %d",
			f.ConfidenceLow, f.ConfidenceHigh, f.PredictedDemand)
	}
	if f.ActualDemand != nil || f.ForecastError != nil {
		return fmt.Errorf("forecast actual_demand and forecast_error must stay null")
	}
	return nil
}
