package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	square := Square(Point{Lat: 10, Lon: 10}, 1)

	assert.Equal(t, Polygon{
		{Lat: 11, Lon: 11},
		{Lat: 9, Lon: 11},
		{Lat: 9, Lon: 9},
		{Lat: 11, Lon: 9},
	}, square)
}

func TestPolygon_Contains(t *testing.T) {
	square := Square(Point{Lat: 10, Lon: 10}, 1)

	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{
			name:     "center is interior",
			point:    Point{Lat: 10, Lon: 10},
			expected: true,
		},
		{
			name:     "off-center interior point",
			point:    Point{Lat: 10.5, Lon: 9.2},
			expected: true,
		},
		{
			name:     "point outside on latitude axis",
			point:    Point{Lat: 12, Lon: 10},
			expected: false,
		},
		{
			name:     "point outside on longitude axis",
			point:    Point{Lat: 10, Lon: 8.5},
			expected: false,
		},
		{
			name:     "point outside both axes",
			point:    Point{Lat: -10, Lon: -10},
			expected: false,
		},
		{
			name:     "max-longitude edge is excluded",
			point:    Point{Lat: 10, Lon: 11},
			expected: false,
		},
		{
			name:     "min-longitude edge counts as inside",
			point:    Point{Lat: 10, Lon: 9},
			expected: true,
		},
		{
			name:     "max-latitude edge is excluded",
			point:    Point{Lat: 11, Lon: 10},
			expected: false,
		},
		{
			name:     "min-latitude edge counts as inside",
			point:    Point{Lat: 9, Lon: 10},
			expected: true,
		},
		{
			name:     "max corner is excluded",
			point:    Point{Lat: 11, Lon: 11},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, square.Contains(tt.point))
		})
	}
}
