package webhook

import (
	"context"
	"net/http"
	"time"

	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

// Client pings heartbeat URLs of an external uptime monitor
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
}

func New(logger *logger.Logger) *Client {
	return NewWithHTTPClient(&http.Client{Timeout: 10 * time.Second}, logger)
}

func NewWithHTTPClient(httpClient *http.Client, logger *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// CallUptimeWebhook issues a GET to webhookURL. Failures are logged, never returned,
// so a flaky monitor cannot fail the job that reports to it.
func (c *Client) CallUptimeWebhook(ctx context.Context, webhookURL string) bool {
	if webhookURL == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, webhookURL, nil)
	if err != nil {
		c.logger.Error("[Webhook][CallUptimeWebhook] failed to build request", map[string]string{
			"url":   webhookURL,
			"error": err.Error(),
		})
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("[Webhook][CallUptimeWebhook] request failed", map[string]string{
			"url":   webhookURL,
			"error": err.Error(),
		})
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Error("[Webhook][CallUptimeWebhook] monitor rejected ping", map[string]string{
			"url":         webhookURL,
			"status_code": resp.Status,
		})
		return false
	}

	c.logger.Info("[Webhook][CallUptimeWebhook] ping delivered", map[string]string{
		"url":         webhookURL,
		"status_code": resp.Status,
	})
	return true
}
