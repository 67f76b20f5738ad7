package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/config"
	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/domain/repository"
	"github.com/aqarview/geosearch/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a client for the conversational criteria-extraction
// service.
func NewClient(cfg *config.AssistantConfig, logger *zap.Logger) repository.AssistantRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// Query sends free text to the assistant and decodes the structured reply:
// either a clarification prompt or extracted criteria plus result listings.
func (c *client) Query(ctx context.Context, q domain.AssistantQuery) (*domain.AssistantReply, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assistant query: %w", err)
	}

	url := c.baseURL + "/api/search"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create assistant request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Assistant request failed", zap.Error(err))
		return nil, errors.ErrAssistantUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Assistant returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload),
		)
		return nil, errors.ErrAssistantUnavailable
	}

	var reply domain.AssistantReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		c.logger.Error("Failed to decode assistant reply", zap.Error(err))
		return nil, errors.ErrAssistantUnavailable
	}

	c.logger.Debug("Assistant reply received",
		zap.String("session_id", q.SessionID),
		zap.Bool("needs_clarification", reply.NeedsClarification),
		zap.Int("results", len(reply.Results)),
		zap.Duration("took", time.Since(start)),
	)

	return &reply, nil
}
