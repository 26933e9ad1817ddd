// Package observability reports unexpected errors to Sentry.
package observability

import (
	"context"
	"log/slog"
	"time"

	"myetician/config"
	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type sentryReporter struct {
	hub *sentry.Hub
}

type noopReporter struct{}

func (noopReporter) Report(context.Context, error) {}

// NewErrorReporter returns a Sentry-backed reporter when sentry.dsn is set and
// a reporter that drops everything otherwise.
func NewErrorReporter(params Params) (service.ErrorReporter, error) {
	cfg := params.Config.Sentry
	if cfg == nil || cfg.DSN == "" {
		params.Logger.Info("Sentry not configured, error reporting disabled")

		return noopReporter{}, nil
	}

	environment := cfg.Environment
	if environment == "" {
		environment = params.Config.Env.Env
	}

	reporter, err := NewSentryReporter(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		ServerName:       params.Config.Env.ServiceName,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			reporter.hub.Flush(flushTimeout)

			return nil
		},
	})

	return reporter, nil
}

// NewSentryReporter builds a reporter on its own hub.
func NewSentryReporter(options sentry.ClientOptions) (*sentryReporter, error) {
	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, errors.Wrap(err, "sentry.NewClient")
	}

	return &sentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

func (r *sentryReporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
			scope.SetTag("request_id", requestID)
		}
		if userID, ok := deliverycontext.GetUserIDFromContext(ctx); ok {
			scope.SetUser(sentry.User{ID: userID})
		}
		hub.CaptureException(err)
	})
}
