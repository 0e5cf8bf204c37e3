package http

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	httpMiddlewares "github.com/sbilibin2017/stepsypush/internal/middlewares/http"
)

// ErrInvalidCACert is returned when a CA bundle contains no usable certificate.
var ErrInvalidCACert = errors.New("no certificates found in CA file")

// Opt defines a function type that configures a *resty.Client and may return an error.
// It is used for modular configuration of the client.
type Opt func(*resty.Client) error

// New creates and returns a new resty.Client with the given options applied.
// Retries stay disabled: a push is attempted exactly once.
func New(opts ...Opt) (*resty.Client, error) {
	client := resty.New().SetRetryCount(0)

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// WithTimeout returns an Opt that applies the first positive timeout from the list.
// The timeout bounds the whole request, including connection setup and reading the response.
func WithTimeout(timeouts ...time.Duration) Opt {
	return func(c *resty.Client) error {
		for _, timeout := range timeouts {
			if timeout > 0 {
				c.SetTimeout(timeout)
				break
			}
		}
		return nil
	}
}

// WithTLSConfig returns an Opt that sets the TLS client configuration.
// A nil config leaves the client unchanged.
func WithTLSConfig(cfg *tls.Config) Opt {
	return func(c *resty.Client) error {
		if cfg != nil {
			c.SetTLSClientConfig(cfg)
		}
		return nil
	}
}

// WithLogger returns an Opt that logs every request sent through the client.
// It wraps the current transport, so it must come after WithTLSConfig.
func WithLogger(logger *zap.Logger) Opt {
	return func(c *resty.Client) error {
		if logger != nil {
			c.SetTransport(httpMiddlewares.LoggingRoundTripper(c.GetClient().Transport, logger))
		}
		return nil
	}
}

// LoadTLSConfig builds a TLS configuration trusting the PEM bundle at caPath in
// addition to the system roots. It returns nil when neither caPath nor insecure is set.
func LoadTLSConfig(caPath string, insecure bool) (*tls.Config, error) {
	if caPath == "" && !insecure {
		return nil, nil
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: insecure,
	}

	if caPath != "" {
		pemData, err := os.ReadFile(caPath)
		if err != nil {
			return nil, fmt.Errorf("read CA file: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pemData) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCACert, caPath)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
