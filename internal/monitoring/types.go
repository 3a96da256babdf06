package monitoring

import (
	"time"
)

// CircuitBreakerConfig defines the configuration for circuit breakers
type CircuitBreakerConfig struct {
	MaxRequests                 uint32        `json:"max_requests"`
	Interval                    time.Duration `json:"interval"`
	Timeout                     time.Duration `json:"timeout"`
	ConsecutiveFailureThreshold int           `json:"consecutive_failure_threshold"`
}

// TimeoutConfig defines timeout configurations for different operations
type TimeoutConfig struct {
	RequestTimeout     time.Duration `json:"request_timeout"`
	HealthCheckTimeout time.Duration `json:"health_check_timeout"`
}

// APIErrorType represents different types of API errors for classification
type APIErrorType string

const (
	ErrorTypeTimeout      APIErrorType = "timeout"
	ErrorTypeNetworkError APIErrorType = "network_error"
	ErrorTypeTLSError     APIErrorType = "tls_error"
	ErrorTypeServerError  APIErrorType = "server_error"
	ErrorTypeRateLimited  APIErrorType = "rate_limited"
	ErrorTypeForbidden    APIErrorType = "forbidden"
	ErrorTypeClientError  APIErrorType = "client_error"
	ErrorTypeCircuitOpen  APIErrorType = "circuit_open"
	ErrorTypeBadPayload   APIErrorType = "bad_payload"
	ErrorTypeUnknown      APIErrorType = "unknown"
)

// IsTransport reports whether the error type means the upstream was unreachable or refused service,
// as opposed to answering with something we could not use.
func (t APIErrorType) IsTransport() bool {
	switch t {
	case ErrorTypeTimeout, ErrorTypeNetworkError, ErrorTypeTLSError, ErrorTypeServerError,
		ErrorTypeRateLimited, ErrorTypeForbidden, ErrorTypeCircuitOpen:
		return true
	default:
		return false
	}
}

// CircuitBreakerConfigs provides default configurations for different services
var CircuitBreakerConfigs = map[string]CircuitBreakerConfig{
	"coingecko_api": {
		MaxRequests:                 2,
		Interval:                    30 * time.Second,
		Timeout:                     60 * time.Second,
		ConsecutiveFailureThreshold: 3,
	},
	"wallet_rpc": {
		MaxRequests:                 3,
		Interval:                    45 * time.Second,
		Timeout:                     120 * time.Second,
		ConsecutiveFailureThreshold: 5,
	},
}

// DefaultTimeoutConfig provides default timeout configurations
var DefaultTimeoutConfig = TimeoutConfig{
	RequestTimeout:     10 * time.Second,
	HealthCheckTimeout: 3 * time.Second,
}
