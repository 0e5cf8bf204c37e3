// Package device resolves the "<manufacturer> <model>" identity of the host.
package device

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/host"

	"github.com/sbilibin2017/stepsypush/internal/models"
)

const (
	defaultDMIDir = "/sys/class/dmi/id"
	unknown       = "unknown"
)

// Detector fills in device identity from the platform.
type Detector struct {
	dmiDir   string
	hostInfo func() (*host.InfoStat, error)
}

// Opt configures a Detector.
type Opt func(*Detector)

// WithDMIDir overrides the directory holding sys_vendor and product_name.
func WithDMIDir(dir string) Opt {
	return func(d *Detector) {
		d.dmiDir = dir
	}
}

// WithHostInfo overrides the host information source.
func WithHostInfo(fn func() (*host.InfoStat, error)) Opt {
	return func(d *Detector) {
		d.hostInfo = fn
	}
}

// NewDetector creates a Detector reading DMI data and gopsutil host info.
func NewDetector(opts ...Opt) *Detector {
	d := &Detector{
		dmiDir:   defaultDMIDir,
		hostInfo: host.Info,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the device identity. Non-empty arguments are used as given;
// missing parts come from DMI, then from host info, then "unknown".
func (d *Detector) Detect(manufacturer, model string) models.Device {
	manufacturer = strings.TrimSpace(manufacturer)
	model = strings.TrimSpace(model)

	if manufacturer == "" {
		manufacturer = d.readDMI("sys_vendor")
	}
	if model == "" {
		model = d.readDMI("product_name")
	}

	if manufacturer == "" || model == "" {
		if info, err := d.hostInfo(); err == nil && info != nil {
			if manufacturer == "" {
				manufacturer = firstNonEmpty(info.Platform, info.OS)
			}
			if model == "" {
				model = info.Hostname
			}
		}
	}

	return models.Device{
		Manufacturer: firstNonEmpty(manufacturer, unknown),
		Model:        firstNonEmpty(model, unknown),
	}
}

func (d *Detector) readDMI(name string) string {
	if d.dmiDir == "" {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(d.dmiDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
