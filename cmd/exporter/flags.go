package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sbilibin2017/stepsypush/internal/configs"
	"github.com/sbilibin2017/stepsypush/internal/configs/settings"
)

var (
	pushURL            string
	username           string
	password           string
	bearerToken        string
	useSSL             bool
	timeout            string
	caCert             string
	insecureSkipVerify bool
	deviceManufacturer string
	deviceModel        string
	logLevel           string
	settingsPath       string

	steps int
	live  bool
)

// init sets up command-line flags.
func init() {
	registerFlags(pflag.CommandLine)
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&pushURL, "push-url", "u", "", "push gateway URL (default "+configs.DefaultPushURL+")")
	fs.StringVar(&username, "username", "", "basic auth username")
	fs.StringVar(&password, "password", "", "basic auth password")
	fs.StringVar(&bearerToken, "bearer-token", "", "bearer token, takes priority over basic auth")
	fs.BoolVar(&useSSL, "use-ssl", false, "force HTTPS when talking to the push gateway")
	fs.StringVarP(&timeout, "timeout", "t", "", "push timeout, seconds or Go duration (default 10s)")
	fs.StringVar(&caCert, "ca-cert", "", "path to a PEM CA bundle trusted for HTTPS")
	fs.BoolVar(&insecureSkipVerify, "insecure-skip-verify", false, "skip TLS certificate verification")
	fs.StringVar(&deviceManufacturer, "device-manufacturer", "", "device manufacturer (detected when empty)")
	fs.StringVar(&deviceModel, "device-model", "", "device model (detected when empty)")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default info)")
	fs.StringVarP(&settingsPath, "settings", "c", "", "path to YAML or JSON settings file")

	fs.IntVarP(&steps, "steps", "s", 0, "step count to report")
	fs.BoolVar(&live, "live", true, "live update; only live updates are pushed")
}

// parseFlags resolves the exporter configuration.
// Precedence: env > flags > settings file > defaults.
func parseFlags() (*configs.ExporterConfig, error) {
	pflag.Parse()

	if len(pflag.Args()) > 0 {
		return nil, errors.New("unknown flags or arguments are provided")
	}

	if env := os.Getenv("SETTINGS"); env != "" {
		settingsPath = env
	}

	s, err := settings.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	envUseSSL, err := envBool("USE_SSL")
	if err != nil {
		return nil, err
	}
	envInsecure, err := envBool("INSECURE_SKIP_VERIFY")
	if err != nil {
		return nil, err
	}

	return configs.NewExporterConfig(
		configs.WithPushURL(os.Getenv("PUSH_URL"), pushURL, settings.String(s.PushURL)),
		configs.WithUsername(os.Getenv("AUTH_USERNAME"), username, settings.String(s.Username)),
		configs.WithPassword(os.Getenv("AUTH_PASSWORD"), password, settings.String(s.Password)),
		configs.WithBearerToken(os.Getenv("BEARER_TOKEN"), bearerToken, settings.String(s.BearerToken)),
		configs.WithUseSSL(envUseSSL, changedBool("use-ssl", useSSL), s.UseSSL),
		configs.WithTimeout(os.Getenv("PUSH_TIMEOUT"), timeout, settings.String(s.Timeout)),
		configs.WithCACertPath(os.Getenv("CA_CERT"), caCert, settings.String(s.CACert)),
		configs.WithInsecureSkipVerify(envInsecure, changedBool("insecure-skip-verify", insecureSkipVerify), s.InsecureSkipVerify),
		configs.WithDevice(
			[]string{os.Getenv("DEVICE_MANUFACTURER"), deviceManufacturer, settings.String(s.DeviceManufacturer)},
			[]string{os.Getenv("DEVICE_MODEL"), deviceModel, settings.String(s.DeviceModel)},
		),
		configs.WithLogLevel(os.Getenv("LOG_LEVEL"), logLevel, settings.String(s.LogLevel)),
	)
}

// changedBool returns the flag value only when it was set on the command line.
func changedBool(name string, value bool) *bool {
	if !pflag.CommandLine.Changed(name) {
		return nil
	}
	return &value
}

// envBool parses a boolean environment variable; unset yields nil.
func envBool(key string) (*bool, error) {
	env := strings.TrimSpace(os.Getenv(key))
	if env == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(env)
	if err != nil {
		return nil, fmt.Errorf("invalid %s env variable", key)
	}
	return &v, nil
}
