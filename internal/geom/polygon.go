package geom

// Polygon is an ordered collection of paths rendered together under the
// even-odd fill rule: a point is inside the polygon when a ray cast from it
// crosses an odd number of edges, counted across every path. Winding
// direction of individual paths is irrelevant to the fill.
//
// A second, overlapping path is how holes are expressed — there is no
// separate "hole" concept, just another contour whose edges flip the parity.
type Polygon struct {
	Paths []Path
}

// NewPolygon builds a polygon from the given paths.
func NewPolygon(paths ...Path) Polygon {
	return Polygon{Paths: append([]Path(nil), paths...)}
}

// AddPath returns the polygon with path appended, for chaining. p is a
// value receiver, so the caller's own polygon keeps its path count; use the
// returned value.
func (p Polygon) AddPath(path Path) Polygon {
	p.Paths = append(p.Paths, path)
	return p
}

// Merge returns a new polygon containing every path of p followed by every
// path of other. This is the explicit, ownership-clean replacement for
// splicing one polygon's path list onto another: the common way to build a
// shape with a hole is to merge an outer contour with an inner one.
func (p Polygon) Merge(other Polygon) Polygon {
	merged := make([]Path, 0, len(p.Paths)+len(other.Paths))
	merged = append(merged, p.Paths...)
	merged = append(merged, other.Paths...)
	return Polygon{Paths: merged}
}

// Empty reports whether the polygon has no paths, or has paths carrying no
// points — either way it renders nothing.
func (p Polygon) Empty() bool {
	if len(p.Paths) == 0 {
		return true
	}
	for _, path := range p.Paths {
		if len(path.Points) > 0 {
			return false
		}
	}
	return true
}

// Bounds returns the union of the bounding rectangles of every path.
func (p Polygon) Bounds() (Rect, bool) {
	var bounds Rect
	found := false
	for _, path := range p.Paths {
		b, ok := path.Bounds()
		if !ok {
			continue
		}
		if !found {
			bounds = b
			found = true
		} else {
			bounds = bounds.Merge(b)
		}
	}
	return bounds, found
}
