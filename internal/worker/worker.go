package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sbilibin2017/stepsypush/internal/models"
	"github.com/sbilibin2017/stepsypush/internal/services"
)

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=worker

// StepsPusher defines an interface for pushing the step count of a device.
type StepsPusher interface {
	// Push stores and submits steps for device.
	Push(ctx context.Context, device string, steps int) error
}

// PushWorker performs a single push invocation.
// Push failures are logged and absorbed; Start never reports them.
type PushWorker struct {
	pusher     StepsPusher
	invocation models.Invocation
	timeout    time.Duration // bound on the push, no bound when zero
	logger     *zap.Logger
}

// NewPushWorker creates a new PushWorker for one invocation.
func NewPushWorker(
	pusher StepsPusher,
	invocation models.Invocation,
	timeout time.Duration,
	logger *zap.Logger,
) *PushWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PushWorker{
		pusher:     pusher,
		invocation: invocation,
		timeout:    timeout,
		logger:     logger,
	}
}

// Start runs the invocation and returns once the push completed or failed.
func (w *PushWorker) Start(ctx context.Context) error {
	device := w.invocation.Device.Label()
	log := w.logger.With(zap.String("device", device))

	if !w.invocation.IsLive {
		log.Debug("not a live update, nothing to push")
		return nil
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	err := w.pusher.Push(ctx, device, w.invocation.Steps)
	switch {
	case err == nil:
		log.Info("successfully pushed live steps to push gateway",
			zap.Int("steps", w.invocation.Steps),
			zap.String("job", models.LiveJob()),
		)
	case errors.Is(err, services.ErrNotConfigured):
		log.Info("push gateway URL is not configured, push skipped")
	default:
		log.Error("failed to push live steps to push gateway",
			zap.Int("steps", w.invocation.Steps),
			zap.Error(err),
		)
	}
	return nil
}
