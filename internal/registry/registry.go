// Package registry holds an explicitly owned table of labeled gauges backed by
// a private Prometheus registry.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/sbilibin2017/stepsypush/internal/models"
)

// Registry errors.
var (
	ErrDuplicateMetric = errors.New("metric already registered")
	ErrLabelArity      = errors.New("label values do not match label keys")
	ErrUnknownMetric   = errors.New("metric is not registered")
)

// Registry maps metric names to gauges. It implements prometheus.Gatherer.
type Registry struct {
	mu     sync.RWMutex
	reg    *prometheus.Registry
	gauges map[string]*Gauge
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		reg:    prometheus.NewRegistry(),
		gauges: make(map[string]*Gauge),
	}
}

// RegisterGauge registers a gauge with a fixed label schema.
// Registering a name twice returns ErrDuplicateMetric.
func (r *Registry) RegisterGauge(name, help string, labelKeys ...string) (*Gauge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gauges[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateMetric, name)
	}

	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}, labelKeys)

	if err := r.reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMetric, name)
		}
		return nil, fmt.Errorf("register gauge %q: %w", name, err)
	}

	g := &Gauge{
		name:      name,
		labelKeys: append([]string(nil), labelKeys...),
		vec:       vec,
	}
	r.gauges[name] = g
	return g, nil
}

// Gather implements prometheus.Gatherer.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.reg.Gather()
}

// Snapshot returns the current samples of the named gauge.
// The order of samples is not guaranteed.
func (r *Registry) Snapshot(name string) ([]models.Sample, error) {
	r.mu.RLock()
	g, ok := r.gauges[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}

	families, err := r.reg.Gather()
	if err != nil {
		return nil, err
	}

	samples := []models.Sample{}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			samples = append(samples, models.Sample{
				LabelValues: g.orderLabels(m.GetLabel()),
				Value:       m.GetGauge().GetValue(),
			})
		}
	}
	return samples, nil
}

// Gauge is a registered gauge with a fixed label schema.
type Gauge struct {
	name      string
	labelKeys []string
	vec       *prometheus.GaugeVec
}

// Name returns the gauge name.
func (g *Gauge) Name() string {
	return g.name
}

// LabelKeys returns a copy of the label schema.
func (g *Gauge) LabelKeys() []string {
	return append([]string(nil), g.labelKeys...)
}

// Set stores value for the exact label tuple, overwriting any previous value.
func (g *Gauge) Set(value float64, labelValues ...string) error {
	if len(labelValues) != len(g.labelKeys) {
		return fmt.Errorf("%w: gauge %q expects %d label values, got %d",
			ErrLabelArity, g.name, len(g.labelKeys), len(labelValues))
	}
	m, err := g.vec.GetMetricWithLabelValues(labelValues...)
	if err != nil {
		return fmt.Errorf("set gauge %q: %w", g.name, err)
	}
	m.Set(value)
	return nil
}

// orderLabels returns label values in schema order; the gatherer sorts pairs by name.
func (g *Gauge) orderLabels(pairs []*dto.LabelPair) []string {
	byName := make(map[string]string, len(pairs))
	for _, p := range pairs {
		byName[p.GetName()] = p.GetValue()
	}
	values := make([]string, len(g.labelKeys))
	for i, k := range g.labelKeys {
		values[i] = byName[k]
	}
	return values
}
