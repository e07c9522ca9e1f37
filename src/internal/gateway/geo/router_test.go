package geo_test

import (
	"testing"
	"time"

	"moving-service/src/internal/gateway/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestSummarizeRoutes_AggregatesLegs(t *testing.T) {
	routes := []maps.Route{{
		Legs: []*maps.Leg{
			{Distance: maps.Distance{Meters: 12000}, Duration: 18 * time.Minute},
			{Distance: maps.Distance{Meters: 8000}, Duration: 12 * time.Minute},
		},
		OverviewPolyline: maps.Polyline{Points: "a~l~Fjk~uOwHJy@P"},
	}}

	distanceKm, durationMin, polyline, err := geo.SummarizeRoutes(routes)
	require.NoError(t, err)
	assert.Equal(t, 20.0, distanceKm)
	assert.Equal(t, 30.0, durationMin)
	assert.Equal(t, "a~l~Fjk~uOwHJy@P", polyline)
}

func TestSummarizeRoutes_PrefersTrafficDuration(t *testing.T) {
	routes := []maps.Route{{
		Legs: []*maps.Leg{{
			Distance:          maps.Distance{Meters: 5000},
			Duration:          10 * time.Minute,
			DurationInTraffic: 14 * time.Minute,
		}},
	}}

	_, durationMin, _, err := geo.SummarizeRoutes(routes)
	require.NoError(t, err)
	assert.Equal(t, 14.0, durationMin)
}

func TestSummarizeRoutes_UsesFirstRoute(t *testing.T) {
	routes := []maps.Route{
		{Legs: []*maps.Leg{{Distance: maps.Distance{Meters: 3000}, Duration: 6 * time.Minute}}},
		{Legs: []*maps.Leg{{Distance: maps.Distance{Meters: 9000}, Duration: 20 * time.Minute}}},
	}

	distanceKm, _, _, err := geo.SummarizeRoutes(routes)
	require.NoError(t, err)
	assert.Equal(t, 3.0, distanceKm)
}

func TestSummarizeRoutes_NoRoutes(t *testing.T) {
	_, _, _, err := geo.SummarizeRoutes(nil)
	assert.ErrorIs(t, err, geo.ErrNoRoute)
}
