package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/config"
	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/domain/repository"
	"github.com/aqarview/geosearch/internal/pkg/errors"
	"github.com/aqarview/geosearch/internal/usecase/dto"
)

const defaultStreamID = "default"

// dispatch is one in-flight query of a logical stream.
type dispatch struct {
	queryID string
	cancel  context.CancelFunc
}

// SearchUseCase resolves the full query tuple (transaction type, facet
// state, free text, viewport) into a listing set. Results are cached by
// the tuple's key; a cached set younger than the staleness window is
// served without touching the store. Successive requests on the same
// stream cancel the previous in-flight one, so only the newest query of
// a moving map ever completes.
type SearchUseCase struct {
	listingRepo repository.ListingRepository
	cacheRepo   repository.CacheRepository
	proximity   *ProximityUseCase
	logger      *zap.Logger

	staleWindow  time.Duration
	retainWindow time.Duration
	pageLimit    int
	timeout      time.Duration

	mu       sync.Mutex
	inFlight map[string]*dispatch
}

func NewSearchUseCase(
	listingRepo repository.ListingRepository,
	cacheRepo repository.CacheRepository,
	proximity *ProximityUseCase,
	cfg *config.Config,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		listingRepo:  listingRepo,
		cacheRepo:    cacheRepo,
		proximity:    proximity,
		logger:       logger,
		staleWindow:  cfg.Cache.StaleWindow,
		retainWindow: cfg.Cache.RetainWindow,
		pageLimit:    cfg.Query.PageLimit,
		timeout:      cfg.Query.Timeout,
		inFlight:     make(map[string]*dispatch),
	}
}

// Resolve runs one search dispatch end to end and converts the result
// for the wire. Failure is always a typed error, never a partial set.
func (uc *SearchUseCase) Resolve(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	start := time.Now()

	result, cacheHit, err := uc.resolveResult(ctx, req)
	if err != nil {
		return nil, err
	}

	return &dto.SearchResponse{
		Listings:  dto.ConvertListings(result.Listings),
		Total:     len(result.Listings),
		Truncated: result.Truncated,
		CacheHit:  cacheHit,
		TookMs:    time.Since(start).Milliseconds(),
	}, nil
}

func (uc *SearchUseCase) resolveResult(ctx context.Context, req dto.SearchRequest) (*domain.SearchResult, bool, error) {
	transactionType := domain.TransactionType(req.TransactionType)
	if !transactionType.Valid() {
		return nil, false, errors.ErrInvalidTransactionType
	}

	if req.Bounds == nil {
		return nil, false, errors.ErrMissingViewport
	}
	bounds := req.Bounds.ToDomain()
	if !bounds.Valid() {
		return nil, false, errors.ErrInvalidBounds
	}

	filters, err := domain.DefaultFilterState().Apply(req.Filters)
	if err != nil {
		return nil, false, err
	}

	key := domain.QueryKey{
		TransactionType: transactionType,
		Filters:         filters,
		Text:            req.Query,
		Bounds:          &bounds,
	}
	cacheKey := key.CacheKey()

	stream := req.StreamID
	if stream == "" {
		stream = defaultStreamID
	}
	queryID := uuid.NewString()

	qctx, cancel := uc.begin(ctx, stream, queryID)
	defer uc.finish(stream, queryID, cancel)

	cached, err := uc.cacheRepo.GetSearchResult(qctx, cacheKey)
	if err != nil {
		// A broken cache degrades to a store round-trip.
		uc.logger.Warn("Cache read failed",
			zap.String("query_id", queryID),
			zap.Error(err),
		)
	}
	if cached != nil && cached.FreshAt(time.Now(), uc.staleWindow) {
		uc.logger.Debug("Search served from cache",
			zap.String("query_id", queryID),
			zap.Int("listings", len(cached.Listings)),
		)
		return cached, true, nil
	}

	listings, err := uc.listingRepo.Search(qctx, uc.buildQuery(transactionType, filters, req.Query, bounds))
	if err != nil {
		uc.logger.Error("Listing query failed",
			zap.String("query_id", queryID),
			zap.Error(err),
		)
		return nil, false, uc.classify(qctx, err)
	}
	if ctxErr := qctx.Err(); ctxErr != nil {
		return nil, false, uc.classify(qctx, ctxErr)
	}

	// A full page means the store may hold more rows for this viewport.
	truncated := len(listings) >= uc.pageLimit

	listings = applyResidualFilters(listings, filters)

	listings, err = uc.proximity.Admit(qctx, listings, filters)
	if err != nil {
		uc.logger.Error("Proximity admission failed",
			zap.String("query_id", queryID),
			zap.Error(err),
		)
		return nil, false, uc.classify(qctx, err)
	}

	result := &domain.SearchResult{
		Listings:  listings,
		Truncated: truncated,
		FetchedAt: time.Now(),
	}

	if err := uc.cacheRepo.SetSearchResult(qctx, cacheKey, result, uc.retainWindow); err != nil {
		uc.logger.Warn("Cache write failed",
			zap.String("query_id", queryID),
			zap.Error(err),
		)
	}

	uc.logger.Info("Search resolved",
		zap.String("query_id", queryID),
		zap.String("stream", stream),
		zap.Int("listings", len(listings)),
		zap.Bool("truncated", truncated),
		zap.Duration("took", time.Since(result.FetchedAt)),
	)

	return result, false, nil
}

// begin registers a dispatch on its stream, cancelling whichever query
// was still in flight there.
func (uc *SearchUseCase) begin(ctx context.Context, stream, queryID string) (context.Context, context.CancelFunc) {
	qctx, cancel := context.WithTimeout(ctx, uc.timeout)

	uc.mu.Lock()
	if prev, ok := uc.inFlight[stream]; ok {
		prev.cancel()
	}
	uc.inFlight[stream] = &dispatch{queryID: queryID, cancel: cancel}
	uc.mu.Unlock()

	return qctx, cancel
}

// finish releases the dispatch unless a newer one already took over the
// stream.
func (uc *SearchUseCase) finish(stream, queryID string, cancel context.CancelFunc) {
	cancel()

	uc.mu.Lock()
	if current, ok := uc.inFlight[stream]; ok && current.queryID == queryID {
		delete(uc.inFlight, stream)
	}
	uc.mu.Unlock()
}

// classify maps a context failure onto its typed error: a hit deadline
// is a timeout, a cancelled context means a newer query superseded this
// one. Anything else passes through.
func (uc *SearchUseCase) classify(ctx context.Context, err error) error {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return errors.ErrSearchTimeout
	case context.Canceled:
		return errors.ErrQuerySuperseded
	}
	return err
}

// buildQuery translates the facet state into the server-expressible
// predicate set. Structural counts push down only when concrete; the
// "other" sentinel stays client-side.
func (uc *SearchUseCase) buildQuery(
	transactionType domain.TransactionType,
	filters domain.FilterState,
	text string,
	bounds domain.ViewportBounds,
) domain.ListingQuery {
	return domain.ListingQuery{
		Purpose:      transactionType.Purpose(),
		City:         filters.City,
		Bounds:       bounds,
		PropertyType: filters.PropertyType,
		District:     filters.Neighborhood,
		Text:         text,
		Rooms:        countFacet(filters.Bedrooms),
		Baths:        countFacet(filters.Bathrooms),
		Halls:        countFacet(filters.LivingRooms),
		Limit:        uc.pageLimit,
	}
}

func countFacet(value string) *int {
	if value == "" || value == domain.CountOther {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

// applyResidualFilters evaluates the range facets the store cannot
// express. Zero on either side means unbounded.
func applyResidualFilters(listings []domain.Listing, filters domain.FilterState) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		price := l.Price()
		area := l.Area()

		if filters.MinPrice > 0 && price < filters.MinPrice {
			continue
		}
		if filters.MaxPrice > 0 && price > filters.MaxPrice {
			continue
		}
		if filters.AreaMin > 0 && area < filters.AreaMin {
			continue
		}
		if filters.AreaMax > 0 && area > filters.AreaMax {
			continue
		}

		out = append(out, l)
	}
	return out
}
