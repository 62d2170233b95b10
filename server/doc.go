// Package server exposes A* path planning over HTTP.
//
// Routes:
//
//	GET  /        info document
//	POST /astar/  plan a path; ?format=geojson returns a FeatureCollection
//
// Planning failures keep the historical wire shape and status 200:
//
//	{"Movement": {"error": "Start or goal node is not part of the graph."}}
//	{"Movement": {"error": "No path found between the nodes."}}
//
// Transport failures use status codes: 400 unparsable JSON, 405 wrong method,
// 413 body or edge count over the configured limit, 422 missing, null or mistyped
// fields and coordinates outside ±core.MaxCoord.
package server
