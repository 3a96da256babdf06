// Package client is a Go client for the SwiftChain HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/view"
)

type (
	Quote         = view.ConversionQuote
	Rates         = view.Rates
	FeeComparison = view.FeeComparison
	Withdrawal    = view.Withdrawal
	WalletBalance = view.WalletBalance
	Transaction   = model.TransactionRecord
	BankDetails   = model.BankDetails
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 2 * time.Minute
)

// ErrAwaitTimeout is returned by AwaitConfirmation when the transaction is still pending at the deadline.
var ErrAwaitTimeout = errors.New("transaction still pending after timeout")

// APIError is a non 2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("swiftchain: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Client talks to one SwiftChain server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger

	// PollInterval and PollTimeout bound AwaitConfirmation
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// NewClient creates a client for baseURL. httpClient and logger may be nil.
func NewClient(baseURL string, httpClient *http.Client, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		baseURL:      baseURL,
		httpClient:   httpClient,
		logger:       log,
		PollInterval: DefaultPollInterval,
		PollTimeout:  DefaultPollTimeout,
	}
}

func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, currency string) (*Quote, error) {
	var quote Quote
	body := map[string]interface{}{"amount": amount, "currency": currency}
	if err := c.do(ctx, http.MethodPost, "/api/v1/convert", body, http.StatusOK, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) Rates(ctx context.Context) (*Rates, error) {
	var rates Rates
	if err := c.do(ctx, http.MethodGet, "/api/v1/rates", nil, http.StatusOK, &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

// FeeComparison compares costs for amount. A zero amount lets the server pick its default.
func (c *Client) FeeComparison(ctx context.Context, amount decimal.Decimal) (*FeeComparison, error) {
	path := "/api/v1/fee-comparison"
	if !amount.IsZero() {
		path += "?amount=" + url.QueryEscape(amount.String())
	}

	var report FeeComparison
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) RegisterTransaction(ctx context.Context, input model.RegisterTransactionInput) (*Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodPost, "/api/v1/transactions/register", input, http.StatusCreated, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// TransactionStatus fetches the transaction. The server advances pending transactions on every call.
func (c *Client) TransactionStatus(ctx context.Context, hash string) (*Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodGet, "/api/v1/transactions/"+url.PathEscape(hash), nil, http.StatusOK, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) SubmitWithdrawal(ctx context.Context, amount decimal.Decimal, bank BankDetails) (*Withdrawal, error) {
	var w Withdrawal
	input := model.SubmitWithdrawalInput{Amount: &amount, BankDetails: &bank}
	if err := c.do(ctx, http.MethodPost, "/api/v1/withdrawals", input, http.StatusCreated, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) Withdrawal(ctx context.Context, id string) (*Withdrawal, error) {
	var w Withdrawal
	if err := c.do(ctx, http.MethodGet, "/api/v1/withdrawals/"+url.PathEscape(id), nil, http.StatusOK, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// AwaitConfirmation polls the transaction every PollInterval until it is confirmed or failed.
// It gives up after PollTimeout with ErrAwaitTimeout and the last record seen.
func (c *Client) AwaitConfirmation(ctx context.Context, hash string) (*Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.PollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	var last *Transaction
	for {
		tx, err := c.TransactionStatus(ctx, hash)
		switch {
		case err == nil:
			last = tx
			if tx.Status.IsTerminal() {
				return tx, nil
			}
		case ctx.Err() != nil:
			// the deadline hit mid request
		default:
			return last, err
		}

		c.logger.Debug("[Client][AwaitConfirmation] pending", map[string]string{
			"hash":          hash,
			"confirmations": fmt.Sprintf("%d", confirmationsOf(last)),
		})

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return last, errors.Wrapf(ErrAwaitTimeout, "hash %s", hash)
			}
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}

func confirmationsOf(tx *Transaction) int {
	if tx == nil {
		return 0
	}
	return tx.Confirmations
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}, wantStatus int, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
		Error   *view.ErrorBody `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrapf(err, "failed to decode response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != wantStatus || envelope.Error != nil {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(envelope.Data, out), "failed to decode data")
}
