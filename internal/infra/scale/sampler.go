// Package scale polls the weight gateway and keeps only the latest reading.
package scale

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"ecopoint/config"
	"ecopoint/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRequestTimeout = 5 * time.Second

// Params holds dependencies for the sampler, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// sampler is the concrete WeightSource. A single goroutine polls the gateway
// on a fixed interval and overwrites the cell; stale readings are dropped,
// never queued. Current never blocks on the poller.
type sampler struct {
	endpoint   string
	interval   time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	current atomic.Pointer[service.WeightReading]
	cancel  context.CancelFunc
	done    chan struct{}
}

// gatewayResponse is the JSON body served by the scale gateway.
type gatewayResponse struct {
	WeightKg float64 `json:"weight_kg"`
}

// New creates the weight sampler and hooks its polling goroutine into the
// application lifecycle. When the scale is disabled in config the source
// simply never reports a reading.
func New(params Params) service.WeightSource {
	cfg := params.Config.Scale
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Scale sampler disabled")

		return &sampler{done: make(chan struct{})}
	}

	s := &sampler{
		endpoint: cfg.Endpoint,
		interval: cfg.Interval,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: params.Logger,
		done:   make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if s.endpoint == "" {
				return errors.New("scale endpoint is required when scale is enabled")
			}

			pollCtx, cancel := context.WithCancel(context.Background())
			s.cancel = cancel
			go s.poll(pollCtx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if s.cancel == nil {
				return nil
			}
			s.cancel()

			select {
			case <-s.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return s
}

// Current returns the most recent reading, or ok=false when nothing has been
// sampled yet.
func (s *sampler) Current() (service.WeightReading, bool) {
	reading := s.current.Load()
	if reading == nil {
		return service.WeightReading{}, false
	}

	return *reading, true
}

func (s *sampler) poll(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sampleOnce(ctx); err != nil {
				// A failed sample keeps the previous reading in place.
				s.logger.Warn("Scale sample failed",
					slog.String("endpoint", s.endpoint),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

func (s *sampler) sampleOnce(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var body gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "failed to decode gateway response")
	}

	s.current.Store(&service.WeightReading{
		WeightKg:  body.WeightKg,
		SampledAt: time.Now().UTC(),
	})

	return nil
}
