package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moving-service/src/internal/model"
	"moving-service/src/pkg/log"

	"googlemaps.github.io/maps"
)

const lookupTimeout = 5 * time.Second

var (
	ErrPlaceNotFound = errors.New("place not found")
	ErrNoRoute       = errors.New("no route between origin and destination")
)

// Geocoder resolves free-text place names to a single best-match coordinate.
type Geocoder interface {
	Resolve(ctx context.Context, placeText string) (model.Coordinate, error)
}

type MapsGeocoder struct {
	Client *maps.Client
	Log    log.Log
}

func NewMapsGeocoder(client *maps.Client, logger log.Log) *MapsGeocoder {
	return &MapsGeocoder{Client: client, Log: logger}
}

func (g *MapsGeocoder) Resolve(ctx context.Context, placeText string) (model.Coordinate, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	results, err := g.Client.Geocode(ctx, &maps.GeocodingRequest{Address: placeText})
	if err != nil {
		g.Log.Error("geo-gateway", err.Error(), "Resolve", placeText)
		return model.Coordinate{}, fmt.Errorf("geocode %q: %w", placeText, err)
	}
	if len(results) == 0 {
		return model.Coordinate{}, fmt.Errorf("geocode %q: %w", placeText, ErrPlaceNotFound)
	}

	// ambiguous input: first result is the provider's best match
	location := results[0].Geometry.Location
	return model.Coordinate{Latitude: location.Lat, Longitude: location.Lng}, nil
}
