package errors

import "net/http"

var (
	ErrMissingViewport = New(
		"MISSING_VIEWPORT",
		"A search requires viewport bounds",
		http.StatusBadRequest,
	)

	ErrInvalidBounds = New(
		"INVALID_BOUNDS",
		"Invalid viewport bounds",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTransactionType = New(
		"INVALID_TRANSACTION_TYPE",
		"Transaction type must be sale or rent",
		http.StatusBadRequest,
	)

	ErrUnknownFilterKey = New(
		"UNKNOWN_FILTER_KEY",
		"Unknown filter key in update",
		http.StatusBadRequest,
	)

	ErrInvalidAmenityCategory = New(
		"INVALID_AMENITY_CATEGORY",
		"Unknown amenity category",
		http.StatusBadRequest,
	)

	ErrQuerySuperseded = New(
		"QUERY_SUPERSEDED",
		"Query was cancelled by a newer request",
		http.StatusConflict,
	)

	ErrSearchTimeout = New(
		"SEARCH_TIMEOUT",
		"Search query timed out",
		http.StatusGatewayTimeout,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrAssistantUnavailable = New(
		"ASSISTANT_UNAVAILABLE",
		"Assistant service request failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
