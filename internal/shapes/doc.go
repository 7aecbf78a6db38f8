// Package shapes builds ready-to-render geom.Polygon values for the common
// primitive shapes: rectangles, rounded rectangles, regular polygons,
// circles, stars, gears, arcs and thick lines. Every constructor builds its
// points directly rather than through an intermediate vertex-command
// iterator; the rasterizer only ever needs the finished point list.
//
// Shapes that support an outline ("Stroked...") are expressed as two
// concentric paths, an outer contour and an inset inner one, combined into
// one polygon with geom.NewPolygon. The even-odd fill rule does the rest:
// area inside both paths crosses an even number of edges and cancels out,
// leaving only the ring between them.
package shapes
