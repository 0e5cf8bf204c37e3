package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sbilibin2017/stepsypush/internal/configs"
	"github.com/sbilibin2017/stepsypush/internal/models"
)

//go:generate mockgen -source=steps.go -destination=steps_mock.go -package=services

// ErrNotConfigured is returned when the push URL is unset or still the placeholder.
var ErrNotConfigured = errors.New("push gateway is not configured")

// GaugeSetter defines the interface for storing a labeled gauge value.
type GaugeSetter interface {
	// Set overwrites the value of the series identified by labelValues.
	Set(value float64, labelValues ...string) error
}

// Pusher defines the interface for submitting a registry snapshot to a push gateway.
type Pusher interface {
	// PushAdd submits everything gatherer collects under job.
	PushAdd(ctx context.Context, gatherer prometheus.Gatherer, job string) error
}

// StepsService reports the live step count of a device.
type StepsService struct {
	gauge    GaugeSetter
	gatherer prometheus.Gatherer
	pusher   Pusher
	pushURL  string
}

// NewStepsService creates a new StepsService.
func NewStepsService(
	gauge GaugeSetter,
	gatherer prometheus.Gatherer,
	pusher Pusher,
	pushURL string,
) *StepsService {
	return &StepsService{
		gauge:    gauge,
		gatherer: gatherer,
		pusher:   pusher,
		pushURL:  pushURL,
	}
}

// Push stores steps for device and submits the registry under the live job.
// It returns ErrNotConfigured without side effects when no gateway is set up.
// A failed submission leaves the stored value in place.
func (svc *StepsService) Push(ctx context.Context, device string, steps int) error {
	if configs.IsPlaceholderURL(svc.pushURL) {
		return ErrNotConfigured
	}

	if err := svc.gauge.Set(float64(steps), device); err != nil {
		return fmt.Errorf("set steps gauge: %w", err)
	}

	return svc.pusher.PushAdd(ctx, svc.gatherer, models.LiveJob())
}
