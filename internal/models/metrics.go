package models

import "strings"

// Exported metric identity.
const (
	JobName       = "stepsy_steps" // Job the steps gauge is registered under.
	LiveJobSuffix = "_live"        // Appended to JobName for live pushes.

	StepsGaugeName = "steps"           // Gauge name on the wire.
	StepsGaugeHelp = "Live step count" // Gauge help text.
	DeviceLabel    = "device"          // Sole label key of the steps gauge.
)

// LiveJob returns the job identifier used on the wire for a live push.
func LiveJob() string {
	return JobName + LiveJobSuffix
}

// Sample is one labeled value of a gauge.
type Sample struct {
	LabelValues []string `json:"label_values"` // Label values in label schema order.
	Value       float64  `json:"value"`        // Current gauge value.
}

// Device identifies the device a step count originates from.
type Device struct {
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Model        string `json:"model" yaml:"model"`
}

// Label formats the device as "<manufacturer> <model>".
func (d Device) Label() string {
	return strings.TrimSpace(d.Manufacturer + " " + d.Model)
}

// Invocation carries the data supplied by the caller of a single push.
type Invocation struct {
	Steps  int    // Step count to report.
	IsLive bool   // Live update flag; only live updates are pushed.
	Device Device // Originating device.
}
