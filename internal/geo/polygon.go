// Package geo provides the small amount of planar geometry the nearby filter
// needs. Coordinates are treated as plain 2D points, not geodesic positions.
package geo

// Point is a position on the coordinate plane, latitude as X, longitude as Y.
type Point struct {
	Lat float64
	Lon float64
}

// Polygon is a closed ring of vertices. The closing edge from the last vertex
// back to the first is implicit.
type Polygon []Point

// Contains reports whether p lies inside the polygon, using the even-odd
// ray-casting rule. Boundary treatment is the usual half-open convention for
// this rule: for an axis-aligned rectangle, points on the minimum-latitude
// and minimum-longitude edges test inside while points on the maximum edges
// do not. Callers must not rely on any particular boundary outcome.
func (poly Polygon) Contains(p Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if (vi.Lon > p.Lon) != (vj.Lon > p.Lon) {
			crossLat := (vj.Lat-vi.Lat)*(p.Lon-vi.Lon)/(vj.Lon-vi.Lon) + vi.Lat
			if p.Lat < crossLat {
				inside = !inside
			}
		}
	}
	return inside
}

// Square builds the axis-aligned square centered on c with the given
// half-width, corners ordered (+,+), (-,+), (-,-), (+,-).
func Square(c Point, halfWidth float64) Polygon {
	return Polygon{
		{Lat: c.Lat + halfWidth, Lon: c.Lon + halfWidth},
		{Lat: c.Lat - halfWidth, Lon: c.Lon + halfWidth},
		{Lat: c.Lat - halfWidth, Lon: c.Lon - halfWidth},
		{Lat: c.Lat + halfWidth, Lon: c.Lon - halfWidth},
	}
}
