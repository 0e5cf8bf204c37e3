package pushgateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/prometheus/common/expfmt"

	"github.com/sbilibin2017/stepsypush/internal/configs/address"
	"github.com/sbilibin2017/stepsypush/internal/configs/auth"
)

// ErrPushFailed wraps every error returned by a push attempt.
var ErrPushFailed = errors.New("push to gateway failed")

// Config describes where and how to push.
type Config struct {
	URL    string         // Gateway URL as configured
	Scheme address.Scheme // Transport scheme override
	Auth   auth.Mode      // Resolved authentication
}

// PushGatewayFacade submits gatherer snapshots to a Prometheus push gateway.
type PushGatewayFacade struct {
	cfg    Config
	doer   push.HTTPDoer
	format expfmt.Format
}

// NewPushGatewayFacade creates a facade sending requests through doer.
// A nil doer falls back to the push library's default client.
func NewPushGatewayFacade(cfg Config, doer push.HTTPDoer) *PushGatewayFacade {
	return &PushGatewayFacade{
		cfg:    cfg,
		doer:   doer,
		format: expfmt.NewFormat(expfmt.TypeTextPlain),
	}
}

// URL returns the gateway URL with the scheme override applied.
func (f *PushGatewayFacade) URL() string {
	return address.ApplyScheme(f.cfg.URL, f.cfg.Scheme)
}

// PushAdd sends everything gatherer collects under job using add semantics
// (HTTP POST): series of other metric names already stored for the job are kept.
func (f *PushGatewayFacade) PushAdd(ctx context.Context, gatherer prometheus.Gatherer, job string) error {
	pusher := push.New(f.URL(), job).
		Gatherer(gatherer).
		Format(f.format)

	if f.doer != nil {
		pusher = pusher.Client(f.doer)
	}

	switch f.cfg.Auth.Kind {
	case auth.Bearer:
		pusher = pusher.Header(http.Header{
			"Authorization": []string{"Bearer " + f.cfg.Auth.Token},
		})
	case auth.Basic:
		pusher = pusher.BasicAuth(f.cfg.Auth.Username, f.cfg.Auth.Password)
	}

	if err := pusher.AddContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPushFailed, err)
	}
	return nil
}
