package monitoring

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"

	"github.com/dwarvesf/swiftchain-backend/internal/ratesource/coingecko"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const priceFeedAPIName = "coingecko_api"

// CircuitBreakerPriceFeed wraps coingecko.IPriceFeed with circuit breaker functionality
type CircuitBreakerPriceFeed struct {
	wrapped        coingecko.IPriceFeed
	circuitBreaker *gobreaker.CircuitBreaker
	metrics        *ExternalAPIMetrics
	logger         *logger.Logger
	timeoutConfig  TimeoutConfig
}

// NewCircuitBreakerPriceFeed creates a new circuit breaker wrapper for the price feed
func NewCircuitBreakerPriceFeed(wrapped coingecko.IPriceFeed, config CircuitBreakerConfig, metrics *ExternalAPIMetrics, logger *logger.Logger) (*CircuitBreakerPriceFeed, error) {
	return NewCircuitBreakerPriceFeedWithTimeout(wrapped, config, DefaultTimeoutConfig, metrics, logger)
}

// NewCircuitBreakerPriceFeedWithTimeout creates a new circuit breaker wrapper with a custom timeout config
func NewCircuitBreakerPriceFeedWithTimeout(wrapped coingecko.IPriceFeed, config CircuitBreakerConfig, timeoutConfig TimeoutConfig, metrics *ExternalAPIMetrics, logger *logger.Logger) (*CircuitBreakerPriceFeed, error) {
	if err := validateCircuitBreakerConfig(config); err != nil {
		return nil, err
	}

	cb := &CircuitBreakerPriceFeed{
		wrapped:       wrapped,
		metrics:       metrics,
		logger:        logger,
		timeoutConfig: timeoutConfig,
	}

	settings := gobreaker.Settings{
		Name:        priceFeedAPIName,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.ConsecutiveFailureThreshold)
		},
		// only transport failures count against the upstream
		IsSuccessful: func(err error) bool {
			return err == nil || !ClassifyError(err).IsTransport()
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state change", map[string]string{
				"service": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			metrics.UpdateCircuitBreakerState(name, to)
		},
	}

	cb.circuitBreaker = gobreaker.NewCircuitBreaker(settings)
	metrics.UpdateCircuitBreakerState(priceFeedAPIName, gobreaker.StateClosed)
	return cb, nil
}

func (cb *CircuitBreakerPriceFeed) SimplePrice(ctx context.Context, ids []string, vsCurrencies []string) (coingecko.Prices, error) {
	result, err := cb.circuitBreaker.Execute(func() (interface{}, error) {
		return cb.executeWithTimeout(ctx, "simple_price", func(ctx context.Context) (interface{}, error) {
			return cb.wrapped.SimplePrice(ctx, ids, vsCurrencies)
		})
	})
	if err != nil {
		return nil, err
	}

	return result.(coingecko.Prices), nil
}

// State exposes the breaker state for health checks.
func (cb *CircuitBreakerPriceFeed) State() gobreaker.State {
	return cb.circuitBreaker.State()
}

func (cb *CircuitBreakerPriceFeed) executeWithTimeout(parent context.Context, operation string, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	start := time.Now()

	timeout := cb.timeoutConfig.RequestTimeout
	if operation == "health_check" {
		timeout = cb.timeoutConfig.HealthCheckTimeout
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	result, err := fn(ctx)
	duration := time.Since(start).Seconds()

	if err != nil {
		if ClassifyError(err) == ErrorTypeTimeout {
			cb.metrics.RecordTimeout(priceFeedAPIName, operation)
		}
		cb.metrics.RecordAPICall(priceFeedAPIName, operation, "error", duration)
		cb.logError(operation, duration, err)
		return nil, err
	}

	cb.metrics.RecordAPICall(priceFeedAPIName, operation, "success", duration)
	return result, nil
}

func (cb *CircuitBreakerPriceFeed) logError(operation string, duration float64, err error) {
	cb.logger.Error("External API call failed", map[string]string{
		"service":    priceFeedAPIName,
		"operation":  operation,
		"duration":   strconv.FormatFloat(duration, 'f', 3, 64),
		"error":      err.Error(),
		"error_type": string(ClassifyError(err)),
		"cb_state":   cb.circuitBreaker.State().String(),
	})
}

// ClassifyError classifies errors into different types for metrics, logging and fallback decisions.
// Typed errors are checked first; message matching is the last resort.
func ClassifyError(err error) APIErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrorTypeCircuitOpen
	}

	var statusErr *coingecko.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return ErrorTypeRateLimited
		case statusErr.StatusCode == http.StatusForbidden:
			return ErrorTypeForbidden
		case statusErr.StatusCode >= http.StatusInternalServerError:
			return ErrorTypeServerError
		default:
			return ErrorTypeClientError
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorTypeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTypeTimeout
	}

	var (
		unknownAuthority x509.UnknownAuthorityError
		hostnameErr      x509.HostnameError
		certInvalid      x509.CertificateInvalidError
		tlsRecordErr     tls.RecordHeaderError
	)
	if errors.As(err, &unknownAuthority) || errors.As(err, &hostnameErr) ||
		errors.As(err, &certInvalid) || errors.As(err, &tlsRecordErr) {
		return ErrorTypeTLSError
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return ErrorTypeNetworkError
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "timeout"), strings.Contains(errMsg, "deadline exceeded"):
		return ErrorTypeTimeout
	case strings.Contains(errMsg, "certificate"), strings.Contains(errMsg, "tls"), strings.Contains(errMsg, "x509"):
		return ErrorTypeTLSError
	case strings.Contains(errMsg, "connection"), strings.Contains(errMsg, "no such host"),
		strings.Contains(errMsg, "unreachable"), strings.Contains(errMsg, "eof"):
		return ErrorTypeNetworkError
	case strings.Contains(errMsg, "parse"), strings.Contains(errMsg, "unmarshal"), strings.Contains(errMsg, "invalid character"):
		return ErrorTypeBadPayload
	}

	return ErrorTypeUnknown
}

// validateCircuitBreakerConfig validates circuit breaker configuration
func validateCircuitBreakerConfig(config CircuitBreakerConfig) error {
	if config.MaxRequests == 0 {
		return errors.New("max_requests must be greater than 0")
	}

	if config.ConsecutiveFailureThreshold <= 0 {
		return errors.New("consecutive_failure_threshold must be greater than 0")
	}

	if config.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if config.Interval < 0 {
		return errors.New("interval must be non-negative")
	}

	return nil
}
