package apps

import (
	"context"

	"go.uber.org/zap"

	"github.com/sbilibin2017/stepsypush/internal/configs"
	"github.com/sbilibin2017/stepsypush/internal/configs/address"
	"github.com/sbilibin2017/stepsypush/internal/configs/auth"
	"github.com/sbilibin2017/stepsypush/internal/facades/pushgateway"
	"github.com/sbilibin2017/stepsypush/internal/models"
	"github.com/sbilibin2017/stepsypush/internal/registry"
	"github.com/sbilibin2017/stepsypush/internal/runner"
	"github.com/sbilibin2017/stepsypush/internal/services"
	"github.com/sbilibin2017/stepsypush/internal/worker"

	httpClient "github.com/sbilibin2017/stepsypush/internal/configs/transport/http"
)

// RunExporter performs one push invocation with a freshly built registry and client.
// Only setup errors are returned; the push outcome is logged by the worker.
func RunExporter(
	ctx context.Context,
	config *configs.ExporterConfig,
	invocation models.Invocation,
	logger *zap.Logger,
) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := registry.New()
	gauge, err := reg.RegisterGauge(models.StepsGaugeName, models.StepsGaugeHelp, models.DeviceLabel)
	if err != nil {
		return err
	}

	tlsConfig, err := httpClient.LoadTLSConfig(config.CACertPath, config.InsecureSkipVerify)
	if err != nil {
		return err
	}

	client, err := httpClient.New(
		httpClient.WithTimeout(config.Timeout),
		httpClient.WithTLSConfig(tlsConfig),
		httpClient.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	gatewayConfig := pushgateway.Config{
		URL:    config.PushURL,
		Scheme: address.ResolveScheme(config.UseSSL),
		Auth:   auth.Resolve(config.BearerToken, config.Username, config.Password),
	}
	facade := pushgateway.NewPushGatewayFacade(gatewayConfig, client.GetClient())

	logger.Debug("push client configured",
		zap.String("url", facade.URL()),
		zap.String("scheme", string(gatewayConfig.Scheme)),
		zap.Stringer("auth", gatewayConfig.Auth),
		zap.Duration("timeout", config.Timeout),
	)

	svc := services.NewStepsService(gauge, reg, facade, config.PushURL)

	r := runner.NewRunner()
	r.AddWorker(worker.NewPushWorker(svc, invocation, config.Timeout, logger))

	return r.Run(ctx)
}
