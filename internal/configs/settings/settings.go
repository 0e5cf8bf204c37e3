// Package settings reads the exporter's persisted settings file.
//
// Keys follow the preference names of the mobile app, so a settings export can
// be used as is. YAML is the native format; JSON files parse as well.
package settings

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds the optional values of a settings file. Nil means "not set".
type Settings struct {
	PushURL            *string `yaml:"prometheus_push_url,omitempty"`
	Username           *string `yaml:"prometheus_auth_username,omitempty"`
	Password           *string `yaml:"prometheus_auth_password,omitempty"`
	BearerToken        *string `yaml:"prometheus_bearer_token,omitempty"`
	UseSSL             *bool   `yaml:"prometheus_use_ssl,omitempty"`
	Timeout            *string `yaml:"push_timeout,omitempty"`
	CACert             *string `yaml:"ca_cert,omitempty"`
	InsecureSkipVerify *bool   `yaml:"insecure_skip_verify,omitempty"`
	DeviceManufacturer *string `yaml:"device_manufacturer,omitempty"`
	DeviceModel        *string `yaml:"device_model,omitempty"`
	LogLevel           *string `yaml:"log_level,omitempty"`
}

// Load reads settings from path. An empty path yields empty settings.
func Load(path string) (*Settings, error) {
	s := &Settings{}
	if strings.TrimSpace(path) == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("error parsing settings file: %w", err)
	}

	return s, nil
}

// String returns the value behind p or "".
func String(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
