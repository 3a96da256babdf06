package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const (
	userAgent   = "SwiftChain/1.0"
	maxBodySize = 1 << 20
)

type coingecko struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

func New(baseURL string, timeout time.Duration, logger *logger.Logger) IPriceFeed {
	return &coingecko{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *coingecko) SimplePrice(ctx context.Context, ids []string, vsCurrencies []string) (Prices, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", strings.Join(vsCurrencies, ","))
	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "coingecko: failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("[SimplePrice][client.Do]", map[string]string{
			"error": err.Error(),
			"ids":   query.Get("ids"),
		})
		return nil, errors.Wrap(err, "coingecko: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "coingecko: failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("[SimplePrice] unexpected status", map[string]string{
			"statusCode": strconv.Itoa(resp.StatusCode),
			"body":       string(body),
		})
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var prices Prices
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, errors.Wrap(err, "coingecko: failed to parse simple price")
	}

	return prices, nil
}
