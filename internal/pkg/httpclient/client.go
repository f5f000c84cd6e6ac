// Package httpclient provides the outbound HTTP client used by carrier integrations.
package httpclient

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound request at debug level and failures at error level.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	Logger  *zap.Logger
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	lrt.Logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		lrt.Logger.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	lrt.Logger.Debug("HTTP request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware and an overall timeout.
func NewClient(timeout time.Duration, logger *zap.Logger) *http.Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
			Logger:  logger,
		},
		Timeout: timeout,
	}
}
