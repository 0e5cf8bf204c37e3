package http

import (
	"crypto/tls"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Opt
		expectOpts func(client *resty.Client)
	}{
		{
			name: "no options disables retries",
			opts: nil,
			expectOpts: func(client *resty.Client) {
				assert.Equal(t, 0, client.RetryCount)
				assert.Equal(t, time.Duration(0), client.GetClient().Timeout)
			},
		},
		{
			name: "applies timeout option",
			opts: []Opt{WithTimeout(3 * time.Second)},
			expectOpts: func(client *resty.Client) {
				assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts...)
			require.NoError(t, err)
			require.NotNil(t, client)

			if tt.expectOpts != nil {
				tt.expectOpts(client)
			}
		})
	}
}

func TestWithTimeout(t *testing.T) {
	tests := []struct {
		name     string
		timeouts []time.Duration
		expected time.Duration
	}{
		{name: "first positive wins", timeouts: []time.Duration{5 * time.Second, time.Second}, expected: 5 * time.Second},
		{name: "skips non-positive", timeouts: []time.Duration{0, -time.Second, 2 * time.Second}, expected: 2 * time.Second},
		{name: "nothing valid leaves client unchanged", timeouts: []time.Duration{0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := resty.New()

			err := WithTimeout(tt.timeouts...)(client)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, client.GetClient().Timeout)
		})
	}
}

func writeServerCert(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ca.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadTLSConfig(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		cfg, err := LoadTLSConfig("", false)
		assert.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("insecure only", func(t *testing.T) {
		cfg, err := LoadTLSConfig("", true)
		require.NoError(t, err)
		assert.True(t, cfg.InsecureSkipVerify)
		assert.Nil(t, cfg.RootCAs)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadTLSConfig(filepath.Join(t.TempDir(), "absent.pem"), false)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("file without certificates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a pem"), 0o600))

		cfg, err := LoadTLSConfig(path, false)
		assert.ErrorIs(t, err, ErrInvalidCACert)
		assert.Nil(t, cfg)
	})
}

func TestWithTLSConfig_TrustsCAFile(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tlsCfg, err := LoadTLSConfig(writeServerCert(t, srv), false)
	require.NoError(t, err)

	client, err := New(WithTimeout(2*time.Second), WithTLSConfig(tlsCfg))
	require.NoError(t, err)

	resp, err := client.GetClient().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWithTLSConfig_Nil(t *testing.T) {
	client := resty.New()
	before := client.GetClient().Transport

	require.NoError(t, WithTLSConfig(nil)(client))
	assert.Equal(t, before, client.GetClient().Transport)

	require.NoError(t, WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})(client))
}

func TestWithLogger(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tlsCfg, err := LoadTLSConfig(writeServerCert(t, srv), false)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	client, err := New(WithTLSConfig(tlsCfg), WithLogger(zap.New(core)))
	require.NoError(t, err)

	resp, err := client.GetClient().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 1, logs.FilterMessage("request").Len())
	assert.Equal(t, 1, logs.FilterMessage("response").Len())
}

func TestWithLogger_Nil(t *testing.T) {
	client := resty.New()
	before := client.GetClient().Transport

	require.NoError(t, WithLogger(nil)(client))
	assert.Equal(t, before, client.GetClient().Transport)
}
