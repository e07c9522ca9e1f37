package geo

import (
	"context"
	"fmt"

	"moving-service/src/internal/model"
	"moving-service/src/pkg/log"

	"googlemaps.github.io/maps"
)

// Router resolves a coordinate pair to a route estimate.
type Router interface {
	Route(ctx context.Context, origin, destination model.Coordinate) (*model.RouteEstimate, error)
}

type MapsRouter struct {
	Client *maps.Client
	Log    log.Log
}

func NewMapsRouter(client *maps.Client, logger log.Log) *MapsRouter {
	return &MapsRouter{Client: client, Log: logger}
}

func (r *MapsRouter) Route(ctx context.Context, origin, destination model.Coordinate) (*model.RouteEstimate, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude),
		Destination: fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := r.Client.Directions(ctx, req)
	if err != nil {
		r.Log.Error("geo-gateway", err.Error(), "Route", fmt.Sprintf("%+v -> %+v", origin, destination))
		return nil, fmt.Errorf("directions request: %w", err)
	}

	distanceKm, durationMin, polyline, err := SummarizeRoutes(routes)
	if err != nil {
		return nil, err
	}

	return &model.RouteEstimate{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		Polyline:    polyline,
	}, nil
}

// SummarizeRoutes folds the first returned route's legs into total distance
// and duration. Directions orders routes best-first, so the first one wins.
func SummarizeRoutes(routes []maps.Route) (distanceKm, durationMin float64, polyline string, err error) {
	if len(routes) == 0 {
		return 0, 0, "", ErrNoRoute
	}

	best := routes[0]
	totalMeters := 0.0
	totalSeconds := 0.0
	for _, leg := range best.Legs {
		totalMeters += float64(leg.Distance.Meters)
		if leg.DurationInTraffic > 0 {
			totalSeconds += leg.DurationInTraffic.Seconds()
		} else {
			totalSeconds += leg.Duration.Seconds()
		}
	}

	return totalMeters / 1000.0, totalSeconds / 60.0, best.OverviewPolyline.Points, nil
}
