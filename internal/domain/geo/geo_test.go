package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Identity(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{-46.6333, -23.5505},
		{121.5654, 25.0330},
		{-180, 90},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := orb.Point{-46.6333, -23.5505}
	b := orb.Point{-46.6333, -23.6000}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-12)
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name   string
		a, b   orb.Point
		wantKm float64
		delta  float64
	}{
		{
			// ~0.05 degrees of latitude is ~5.56 km
			name:   "são paulo offset",
			a:      orb.Point{-46.6333, -23.5505},
			b:      orb.Point{-46.6333, -23.6000},
			wantKm: 5.50,
			delta:  0.1,
		},
		{
			// One degree of latitude on the 6371 km sphere
			name:   "one degree latitude",
			a:      orb.Point{0, 0},
			b:      orb.Point{0, 1},
			wantKm: 111.19,
			delta:  0.05,
		},
		{
			name:   "quarter circumference",
			a:      orb.Point{0, 0},
			b:      orb.Point{90, 0},
			wantKm: 10007.5,
			delta:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, DistanceKm(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistanceKm_ShortDistanceStaysUnderGateRadius(t *testing.T) {
	// ~50 m apart, must stay well under the 100 m proximity radius
	a := orb.Point{-46.6333, -23.5505}
	b := orb.Point{-46.6333, -23.55095}

	assert.Less(t, DistanceKm(a, b), 0.1)
}
