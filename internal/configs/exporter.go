package configs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Defaults of the exporter configuration.
const (
	// DefaultPushURL is a placeholder, not an operational push gateway.
	DefaultPushURL  = "http://your-prometheus-pushgateway-url:9091"
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "info"
)

// ErrInvalidTimeout is returned when a timeout value cannot be used.
var ErrInvalidTimeout = errors.New("invalid push timeout")

// ExporterConfig holds configuration parameters for one push invocation.
type ExporterConfig struct {
	PushURL            string        `json:"push_url"`             // Push gateway URL
	Username           string        `json:"username"`             // Basic auth user
	Password           string        `json:"-"`                    // Basic auth password
	BearerToken        string        `json:"-"`                    // Bearer token, wins over basic auth
	UseSSL             bool          `json:"use_ssl"`              // Force HTTPS
	Timeout            time.Duration `json:"timeout"`              // Bound on the push request
	CACertPath         string        `json:"ca_cert"`              // Extra CA bundle for HTTPS
	InsecureSkipVerify bool          `json:"insecure_skip_verify"` // Skip TLS verification
	DeviceManufacturer string        `json:"device_manufacturer"`  // Overrides detected manufacturer
	DeviceModel        string        `json:"device_model"`         // Overrides detected model
	LogLevel           string        `json:"log_level"`            // zap level name
}

// IsPlaceholder reports whether the push URL was left unconfigured.
func (c *ExporterConfig) IsPlaceholder() bool {
	return IsPlaceholderURL(c.PushURL)
}

// IsPlaceholderURL reports whether url is empty or the default placeholder.
func IsPlaceholderURL(url string) bool {
	url = strings.TrimSpace(url)
	return url == "" || url == DefaultPushURL
}

// ExporterConfigOpt defines a function type for applying configuration options to ExporterConfig.
type ExporterConfigOpt func(*ExporterConfig) error

// NewExporterConfig creates a new ExporterConfig with defaults and the given options applied.
// Returns error if any option fails.
func NewExporterConfig(opts ...ExporterConfigOpt) (*ExporterConfig, error) {
	cfg := &ExporterConfig{
		PushURL:  DefaultPushURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values []string) (string, bool) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// WithPushURL sets PushURL to the first non-empty string in urls.
func WithPushURL(urls ...string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		if v, ok := firstNonEmpty(urls); ok {
			cfg.PushURL = strings.TrimSpace(v)
		}
		return nil
	}
}

// WithUsername sets Username to the first non-empty string in names.
func WithUsername(names ...string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		if v, ok := firstNonEmpty(names); ok {
			cfg.Username = v
		}
		return nil
	}
}

// WithPassword sets Password to the first non-empty string in passwords.
func WithPassword(passwords ...string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		if v, ok := firstNonEmpty(passwords); ok {
			cfg.Password = v
		}
		return nil
	}
}

// WithBearerToken sets BearerToken to the first non-empty string in tokens.
func WithBearerToken(tokens ...string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		if v, ok := firstNonEmpty(tokens); ok {
			cfg.BearerToken = strings.TrimSpace(v)
		}
		return nil
	}
}

// WithUseSSL sets UseSSL to the first non-nil value in flags.
func WithUseSSL(flags ...*bool) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		for _, f := range flags {
			if f != nil {
				cfg.UseSSL = *f
				break
			}
		}
		return nil
	}
}

// WithInsecureSkipVerify sets InsecureSkipVerify to the first non-nil value in flags.
func WithInsecureSkipVerify(flags ...*bool) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		for _, f := range flags {
			if f != nil {
				cfg.InsecureSkipVerify = *f
				break
			}
		}
		return nil
	}
}

// WithTimeout parses the first non-empty value in timeouts. Bare integers are seconds,
// anything else must be a Go duration. Non-positive values are rejected.
func WithTimeout(timeouts ...string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		v, ok := firstNonEmpty(timeouts)
		if !ok {
			return nil
		}
		d, err := ParseDuration(v)
		if err != nil {
			return err
		}
		cfg.Timeout = d
		return nil
	}
}

// ParseDuration parses seconds or Go duration syntax into a positive duration.
func ParseDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, v)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, v)
	}
	return d, nil
}

// WithCACertPath sets CACertPath to the first non-empty string in paths.
func WithCACertPath(paths ...string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		if v, ok := firstNonEmpty(paths); ok {
			cfg.CACertPath = strings.TrimSpace(v)
		}
		return nil
	}
}

// WithDevice sets the device manufacturer and model overrides from the first
// non-empty candidates.
func WithDevice(manufacturers, models []string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		if v, ok := firstNonEmpty(manufacturers); ok {
			cfg.DeviceManufacturer = strings.TrimSpace(v)
		}
		if v, ok := firstNonEmpty(models); ok {
			cfg.DeviceModel = strings.TrimSpace(v)
		}
		return nil
	}
}

// WithLogLevel sets LogLevel to the first non-empty string in levels.
func WithLogLevel(levels ...string) ExporterConfigOpt {
	return func(cfg *ExporterConfig) error {
		if v, ok := firstNonEmpty(levels); ok {
			cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
		}
		return nil
	}
}
