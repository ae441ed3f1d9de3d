// Package addresslookup resolves Eircodes against the external address service.
package addresslookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"operations_backend/platform/config"
	"operations_backend/platform/logger"
)

const apiKeyHeader = "x-api-key"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logger.Logger
}

func NewClient(cfg config.AddressAPIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GetAddressAPIBaseURL(), "/"),
		apiKey:  cfg.GetAddressAPIKey(),
		http:    &http.Client{Timeout: cfg.GetAddressAPITimeout()},
		log:     log,
	}
}

// Lookup fetches the address registered for eirCode.
// It returns ErrNotFound when the service answers with an empty result and
// ErrUnavailable (wrapping the cause) for every other failure.
func (c *Client) Lookup(ctx context.Context, eirCode string) (Result, error) {
	reqURL := fmt.Sprintf("%s/eircode/%s", c.baseURL, url.PathEscape(eirCode))
	log := c.log.WithContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("address lookup request failed", "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error("address lookup upstream error", "status", resp.StatusCode)
		return Result{}, fmt.Errorf("%w: upstream status %d", ErrUnavailable, resp.StatusCode)
	}

	// A JSON null body leaves result nil and counts as not found.
	var result *Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error("failed to decode address lookup payload", "error", err)
		return Result{}, fmt.Errorf("%w: decode payload: %v", ErrUnavailable, err)
	}

	if result == nil || result.ID == 0 {
		log.Debug("eircode not found", "eirCode", eirCode)
		return Result{}, ErrNotFound
	}

	return *result, nil
}
