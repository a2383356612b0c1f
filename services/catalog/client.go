// File: services/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"dinebot/models"

	"go.uber.org/zap"
)

// Fetcher provides the per-turn read-only catalog snapshot.
type Fetcher interface {
	FetchAll(ctx context.Context) models.Catalog
}

// Client reads the catalog list endpoints of the external CRUD service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// FetchAll issues the three list reads concurrently and joins them before
// returning. A failed list yields an empty slice: the turn proceeds and
// resolution simply finds nothing, which downstream reports as "not found".
func (c *Client) FetchAll(ctx context.Context) models.Catalog {
	var cat models.Catalog
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		if err := c.fetchList(ctx, "/restaurants", &cat.Restaurants); err != nil {
			c.logger.Warn("catalog: restaurants fetch failed", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := c.fetchList(ctx, "/categories", &cat.Categories); err != nil {
			c.logger.Warn("catalog: categories fetch failed", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := c.fetchList(ctx, "/items", &cat.Items); err != nil {
			c.logger.Warn("catalog: items fetch failed", zap.Error(err))
		}
	}()
	wg.Wait()

	return cat
}

func (c *Client) fetchList(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}
