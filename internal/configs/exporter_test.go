package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestNewExporterConfig(t *testing.T) {
	tests := []struct {
		name     string
		opts     []ExporterConfigOpt
		expected ExporterConfig
	}{
		{
			name: "no options - use defaults",
			opts: nil,
			expected: ExporterConfig{
				PushURL:  DefaultPushURL,
				Timeout:  DefaultTimeout,
				LogLevel: DefaultLogLevel,
			},
		},
		{
			name: "first non-empty candidate wins",
			opts: []ExporterConfigOpt{
				WithPushURL("", "  ", "http://env:9091", "http://flag:9091"),
				WithUsername("", "u"),
				WithPassword("p", "other"),
				WithBearerToken("", ""),
				WithUseSSL(nil, boolPtr(true), boolPtr(false)),
				WithTimeout("", "3"),
				WithCACertPath("", "/etc/ca.pem"),
				WithInsecureSkipVerify(nil, nil),
				WithDevice([]string{"", "Acme"}, []string{"Phone9"}),
				WithLogLevel("", "DEBUG"),
			},
			expected: ExporterConfig{
				PushURL:            "http://env:9091",
				Username:           "u",
				Password:           "p",
				UseSSL:             true,
				Timeout:            3 * time.Second,
				CACertPath:         "/etc/ca.pem",
				DeviceManufacturer: "Acme",
				DeviceModel:        "Phone9",
				LogLevel:           "debug",
			},
		},
		{
			name: "explicit false overrides later true",
			opts: []ExporterConfigOpt{
				WithUseSSL(boolPtr(false), boolPtr(true)),
				WithInsecureSkipVerify(boolPtr(true)),
				WithBearerToken("tok123"),
				WithTimeout("1500ms"),
			},
			expected: ExporterConfig{
				PushURL:            DefaultPushURL,
				BearerToken:        "tok123",
				InsecureSkipVerify: true,
				Timeout:            1500 * time.Millisecond,
				LogLevel:           DefaultLogLevel,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewExporterConfig(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestNewExporterConfig_InvalidTimeout(t *testing.T) {
	for _, v := range []string{"0", "-5", "soon", "-1s"} {
		t.Run(v, func(t *testing.T) {
			cfg, err := NewExporterConfig(WithTimeout(v))
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidTimeout)
		})
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("15")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	d, err = ParseDuration(" 2m ")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)
}

func TestIsPlaceholderURL(t *testing.T) {
	assert.True(t, IsPlaceholderURL(""))
	assert.True(t, IsPlaceholderURL("  "))
	assert.True(t, IsPlaceholderURL(DefaultPushURL))
	assert.False(t, IsPlaceholderURL("http://gateway:9091"))

	cfg, err := NewExporterConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsPlaceholder())
}
