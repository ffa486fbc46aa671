package appconfig

import (
	"time"

	"exusiai.dev/statsboard/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving the dashboard.
	ServiceAddress string `required:"true" split_words:"true" default:":8080"`

	// UpstreamURL is the base URL of the stats backend. Requests are made to UpstreamURL + StatsPath.
	// In the usual deployment the ingress routes /api to the backend, so this is the ingress origin.
	UpstreamURL string `required:"true" split_words:"true" default:"http://localhost:8000"`

	// StatsPath is the path of the precomputed statistics endpoint on the upstream.
	StatsPath string `required:"true" split_words:"true" default:"/api/stats"`

	// UpstreamHealthPath is the path checked by the /_/health endpoint.
	UpstreamHealthPath string `split_words:"true" default:"/api/healthz"`

	// UpstreamTimeout bounds a single request to the upstream. Zero leaves the request unbounded.
	UpstreamTimeout time.Duration `split_words:"true" default:"10s"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// log at trace level. See internal/server/httpserver/http.go for the actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"stdout"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

// StatsURL is the absolute URL of the upstream statistics endpoint.
func (c *Config) StatsURL() string {
	return joinURL(c.UpstreamURL, c.StatsPath)
}

// HealthURL is the absolute URL of the upstream health endpoint.
func (c *Config) HealthURL() string {
	return joinURL(c.UpstreamURL, c.UpstreamHealthPath)
}
