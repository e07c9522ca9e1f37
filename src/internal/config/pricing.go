package config

import (
	"moving-service/src/internal/pricing"

	"github.com/spf13/viper"
)

// NewPricingEngine builds the rate card from configuration, falling back to
// the built-in defaults for any class without an override. Rates load once
// at startup and never change afterwards.
func NewPricingEngine(v *viper.Viper) *pricing.Engine {
	catalog := pricing.DefaultCatalog()

	for class, rates := range catalog {
		prefix := "pricing.vehicles." + string(class)
		if v.IsSet(prefix + ".base_fee_cents") {
			rates.BaseFeeCents = v.GetInt64(prefix + ".base_fee_cents")
		}
		if v.IsSet(prefix + ".per_labor_minute_cents") {
			rates.PerLaborMinuteCents = v.GetInt64(prefix + ".per_labor_minute_cents")
		}
		if v.IsSet(prefix + ".distance_rate_cents_per_km") {
			rates.DistanceRateCentsPerKm = v.GetInt64(prefix + ".distance_rate_cents_per_km")
		}
		catalog[class] = rates
	}

	taxRateBP := v.GetInt64("pricing.tax_rate_bp")
	if taxRateBP == 0 {
		taxRateBP = 1000
	}

	return pricing.NewEngine(catalog, taxRateBP)
}
