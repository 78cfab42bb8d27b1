// Package client talks to a running analysis server.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/internal/api"
)

// DefaultURL is where the server listens unless configured otherwise.
const DefaultURL = "http://localhost:3000"

// Client is an analysis server client.
type Client struct {
	httpc *resty.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	httpc := resty.New()
	httpc.SetBaseURL(baseURL)
	httpc.SetHeader("Content-Type", "application/json")
	httpc.SetTimeout(timeout)
	if logger != nil {
		httpc.SetLogger(logger.Sugar())
	}
	return &Client{httpc: httpc}
}

// Analyze posts one snippet to the server.
func (c *Client) Analyze(ctx context.Context, req neatcommit.Request) (*neatcommit.Result, error) {
	var result api.AnalysisResponse
	var failure api.ErrorResponse
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&failure).
		Post(api.AnalysisPath)
	if err != nil {
		return nil, fmt.Errorf("posting %s: %w", req.Filename, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("analysis of %s failed with status %d: %s", req.Filename, resp.StatusCode(), failure.Error)
	}
	if !result.Success || result.Result == nil {
		return nil, fmt.Errorf("analysis of %s returned no result", req.Filename)
	}
	return result.Result, nil
}

// Rules lists the rules loaded by the server.
func (c *Client) Rules(ctx context.Context) (*api.RulesResponse, error) {
	var rules api.RulesResponse
	resp, err := c.httpc.R().SetContext(ctx).SetResult(&rules).Get("/rules")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing rules failed with status %d", resp.StatusCode())
	}
	return &rules, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var health api.HealthResponse
	resp, err := c.httpc.R().SetContext(ctx).SetResult(&health).Get("/healthz")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("health check failed with status %d", resp.StatusCode())
	}
	return &health, nil
}
