package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outgoing request and its outcome at debug level.
// Request bodies and headers are not logged, so credentials stay out of the log.
func LoggingRoundTripper(next http.RoundTripper, logger *zap.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()

		logger.Debug("request",
			zap.String("method", req.Method),
			zap.String("uri", req.URL.Redacted()),
		)

		resp, err := next.RoundTrip(req)
		duration := time.Since(start)

		if err != nil {
			logger.Debug("response",
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return nil, err
		}

		logger.Debug("response",
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration),
		)
		return resp, nil
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
