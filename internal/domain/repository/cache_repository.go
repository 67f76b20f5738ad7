package repository

import (
	"context"
	"time"

	"github.com/aqarview/geosearch/internal/domain"
)

// CacheRepository is the listing-set cache. Only the search use case
// reads or writes it.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetSearchResult(ctx context.Context, key string) (*domain.SearchResult, error)
	SetSearchResult(ctx context.Context, key string, result *domain.SearchResult, ttl time.Duration) error
}
