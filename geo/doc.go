// Package geo renders planned paths and segment sets as GeoJSON using paulmach/orb.
//
// Coordinates are the integer graph coordinates cast to float64; no projection is
// applied. A path becomes a LineString feature carrying "hops", the input segments a
// MultiLineString feature carrying "segments".
package geo
