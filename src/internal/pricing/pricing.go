package pricing

import (
	"errors"
	"math"

	"moving-service/src/internal/model"
)

type VehicleClass string

const (
	PickupTruck VehicleClass = "pickup_truck"
	Van         VehicleClass = "van"
	Truck       VehicleClass = "truck"
	TruckXL     VehicleClass = "truck_xl"
)

var (
	ErrInvalidVehicleClass  = errors.New("unknown vehicle class")
	ErrInvalidRouteEstimate = errors.New("route estimate must have non-negative distance and duration")
	ErrNegativePrice        = errors.New("computed a negative price component")
)

// Rates is the immutable rate card entry for one vehicle class. All amounts
// are integer minor units (cents).
type Rates struct {
	DisplayName            string
	BaseFeeCents           int64
	PerLaborMinuteCents    int64
	DistanceRateCentsPerKm int64
}

type Catalog map[VehicleClass]Rates

// DefaultCatalog is the fallback rate card when no rates are configured.
func DefaultCatalog() Catalog {
	return Catalog{
		PickupTruck: {DisplayName: "Pickup Truck", BaseFeeCents: 12000, PerLaborMinuteCents: 1200, DistanceRateCentsPerKm: 150},
		Van:         {DisplayName: "Van", BaseFeeCents: 15000, PerLaborMinuteCents: 1500, DistanceRateCentsPerKm: 200},
		Truck:       {DisplayName: "Truck", BaseFeeCents: 20000, PerLaborMinuteCents: 1800, DistanceRateCentsPerKm: 250},
		TruckXL:     {DisplayName: "Truck XL", BaseFeeCents: 26000, PerLaborMinuteCents: 2200, DistanceRateCentsPerKm: 300},
	}
}

// ShippingFn maps a rate card entry and a distance to a shipping amount in
// cents. It must be monotonically non-decreasing in distance.
type ShippingFn func(rates Rates, distanceKm float64) int64

// LinearShipping is the default tiering: distance times the per-km rate.
func LinearShipping(rates Rates, distanceKm float64) int64 {
	return roundCents(distanceKm * float64(rates.DistanceRateCentsPerKm))
}

// Engine prices a route for a vehicle class. It performs no I/O and keeps
// no mutable state, so quotes for identical inputs are always identical.
type Engine struct {
	Catalog   Catalog
	TaxRateBP int64 // basis points, 1000 = 10%
	Shipping  ShippingFn
}

func NewEngine(catalog Catalog, taxRateBP int64) *Engine {
	return &Engine{
		Catalog:   catalog,
		TaxRateBP: taxRateBP,
		Shipping:  LinearShipping,
	}
}

// Quote derives the cost breakdown for one vehicle/route pair.
//
//	subtotal = baseFee + perLaborMinute * durationMin
//	shipping = Shipping(rates, distanceKm)
//	tax      = (subtotal + shipping) * taxRate
//	total    = subtotal + shipping + tax
//
// Every component is rounded to cents exactly once, then total is the plain
// integer sum, so the breakdown can never drift.
func (e *Engine) Quote(vehicle VehicleClass, route model.RouteEstimate) (model.CostBreakdown, error) {
	rates, ok := e.Catalog[vehicle]
	if !ok {
		return model.CostBreakdown{}, ErrInvalidVehicleClass
	}
	if route.DistanceKm < 0 || route.DurationMin < 0 {
		return model.CostBreakdown{}, ErrInvalidRouteEstimate
	}

	subtotal := rates.BaseFeeCents + roundCents(float64(rates.PerLaborMinuteCents)*route.DurationMin)
	shipping := e.Shipping(rates, route.DistanceKm)
	tax := taxOn(subtotal+shipping, e.TaxRateBP)

	if subtotal < 0 || shipping < 0 || tax < 0 {
		return model.CostBreakdown{}, ErrNegativePrice
	}

	return model.CostBreakdown{
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotal + shipping + tax,
	}, nil
}

// taxOn applies a basis-point rate with half-up rounding in pure integer math.
func taxOn(amountCents, rateBP int64) int64 {
	return (amountCents*rateBP + 5000) / 10000
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
