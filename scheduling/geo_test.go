package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{12.9716, 77.5946, 13.0827, 80.2707}, // Bangalore -> Chennai
		{28.6139, 77.2090, 19.0760, 72.8777}, // Delhi -> Mumbai
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range pairs {
		ab := HaversineDistance(p[0], p[1], p[2], p[3])
		ba := HaversineDistance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestHaversineDistance_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, HaversineDistance(12.9716, 77.5946, 12.9716, 77.5946))
}

func TestHaversineDistance_KnownDistance(t *testing.T) {
	// Bangalore to Chennai is about 290 km as the crow flies
	d := HaversineDistance(12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, d, 5)
}
