// Package docs Geosearch API.
//
// Geospatial search engine for real-estate listings in Riyadh. Resolves
// viewport-bounded listing queries with facet filters and amenity
// proximity requirements, derives map overlays (convex boundary, price
// colors, bounds) and proxies conversational criteria extraction.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
