package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/segpath/core"
)

// Feature "kind" property values.
const (
	KindPath  = "path"
	KindEdges = "edges"
)

// PathFeature returns path as a LineString feature with properties
// kind="path" and hops=len(path)-1.
func PathFeature(path []core.Point) *geojson.Feature {
	ls := make(orb.LineString, 0, len(path))
	for _, p := range path {
		ls = append(ls, toOrb(p))
	}
	f := geojson.NewFeature(ls)
	f.Properties["kind"] = KindPath
	f.Properties["hops"] = hops(path)

	return f
}

// EdgesFeature returns the segments as one MultiLineString feature.
func EdgesFeature(edges []core.Edge) *geojson.Feature {
	mls := make(orb.MultiLineString, 0, len(edges))
	for _, e := range edges {
		a, b := e.Endpoints()
		mls = append(mls, orb.LineString{toOrb(a), toOrb(b)})
	}
	f := geojson.NewFeature(mls)
	f.Properties["kind"] = KindEdges
	f.Properties["segments"] = len(edges)

	return f
}

// Collection bundles the path and, when edges is non-empty, the segment layer.
// The path feature is always first.
func Collection(path []core.Point, edges []core.Edge) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(PathFeature(path))
	if len(edges) > 0 {
		fc.Append(EdgesFeature(edges))
	}

	return fc
}

// Bound returns the bounding box of path, or the zero bound for an empty path.
func Bound(path []core.Point) orb.Bound {
	if len(path) == 0 {
		return orb.Bound{}
	}
	b := toOrb(path[0]).Bound()
	for _, p := range path[1:] {
		b = b.Extend(toOrb(p))
	}

	return b
}

func toOrb(p core.Point) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

func hops(path []core.Point) int {
	if len(path) == 0 {
		return 0
	}

	return len(path) - 1
}
