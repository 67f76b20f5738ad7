package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"
)

// QueryKey identifies a search: two structurally equal keys are the same
// query for caching purposes.
type QueryKey struct {
	TransactionType TransactionType `json:"transaction_type"`
	Filters         FilterState     `json:"filters"`
	Text            string          `json:"text"`
	Bounds          *ViewportBounds `json:"bounds"`
}

// CacheKey derives the cache key from the canonical JSON encoding of the
// tuple. Struct field order is fixed, so equal tuples encode identically.
func (k QueryKey) CacheKey() string {
	data, _ := json.Marshal(k)
	sum := sha1.Sum(data)
	return "search:" + hex.EncodeToString(sum[:])
}

// SearchResult is a resolved listing set. Truncated means the remote page
// came back full, so the set may be incomplete for the viewport.
type SearchResult struct {
	Listings  []Listing `json:"listings"`
	Truncated bool      `json:"truncated"`
	FetchedAt time.Time `json:"fetched_at"`
}

// FreshAt reports whether the result is still inside the staleness window.
func (r *SearchResult) FreshAt(now time.Time, staleWindow time.Duration) bool {
	return now.Sub(r.FetchedAt) < staleWindow
}

// ListingQuery is the server-expressible predicate set handed to the
// listing repository. Facets the store cannot express (price/area ranges,
// proximity) are filtered client-side after the fetch.
type ListingQuery struct {
	Purpose      string
	City         string
	Bounds       ViewportBounds
	PropertyType string
	District     string
	Text         string
	Rooms        *int
	Baths        *int
	Halls        *int
	Limit        int
}
