package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration.
// A nil application is returned when the agent is disabled or fails to start.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = configs.App.Name
	}
	logger.Info("New Relic enabled",
		logger.String("app_name", appName),
		logger.Bool("logs_enabled", configs.NewRelic.LogsEnabled))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}

// WithSegment runs fn inside a segment of the transaction carried by ctx, if any
func WithSegment(ctx context.Context, name string, fn func() error) error {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return fn()
	}
	defer txn.StartSegment(name).End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}

// InstrumentHTTPRequest wraps an outgoing call in an external segment
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, do func() (*http.Response, error)) (*http.Response, error) {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return do()
	}

	segment := newrelic.StartExternalSegment(txn, req)
	defer segment.End()

	resp, err := do()
	if resp != nil {
		segment.Response = resp
	}
	return resp, err
}
