// Command exporter pushes the live step count of this device to a Prometheus
// push gateway. Each run performs exactly one push attempt; a failed push is
// logged and the process still exits successfully.
//
// Usage:
//
//	exporter --push-url http://gateway:9091 --steps 1234
//	exporter -c settings.yaml -s 1234
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sbilibin2017/stepsypush/internal/apps"
	"github.com/sbilibin2017/stepsypush/internal/configs"
	"github.com/sbilibin2017/stepsypush/internal/configs/device"
	"github.com/sbilibin2017/stepsypush/internal/logger"
	"github.com/sbilibin2017/stepsypush/internal/models"
)

// Application entry point.
func main() {
	cfg, err := parseFlags()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(context.Background(), cfg, zlog); err != nil {
		zlog.Fatal("exporter setup failed", zap.Error(err))
	}
	_ = zlog.Sync()
}

// run resolves the device identity and performs one push invocation.
func run(ctx context.Context, cfg *configs.ExporterConfig, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	invocation := models.Invocation{
		Steps:  steps,
		IsLive: live,
		Device: device.NewDetector().Detect(cfg.DeviceManufacturer, cfg.DeviceModel),
	}

	return apps.RunExporter(ctx, cfg, invocation, zlog)
}
