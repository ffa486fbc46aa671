package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/statsboard/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse(appcontext.Declare(appcontext.EnvServer))
	require.NoError(t, err)

	assert.Equal(t, ":8080", conf.ServiceAddress)
	assert.Equal(t, "/api/stats", conf.StatsPath)
	assert.Equal(t, 10*time.Second, conf.UpstreamTimeout)
	assert.Equal(t, []string{"::1", "127.0.0.1", "10.0.0.0/8"}, conf.TrustedProxies)
	assert.Equal(t, appcontext.EnvServer, conf.AppContext.Env)
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("STATSBOARD_UPSTREAM_URL", "http://ingress.local/")
	t.Setenv("STATSBOARD_UPSTREAM_TIMEOUT", "250ms")
	t.Setenv("STATSBOARD_TRACING_EXPORTERS", "jaeger,otlp")

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, "http://ingress.local/api/stats", conf.StatsURL())
	assert.Equal(t, "http://ingress.local/api/healthz", conf.HealthURL())
	assert.Equal(t, 250*time.Millisecond, conf.UpstreamTimeout)
	assert.Equal(t, []string{"jaeger", "otlp"}, conf.TracingExporters)
}

func TestParseRejectsMalformed(t *testing.T) {
	t.Setenv("STATSBOARD_UPSTREAM_TIMEOUT", "soon")

	_, err := Parse(appcontext.Declare(appcontext.EnvServer))
	assert.Error(t, err)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://a/api/stats", joinURL("http://a", "/api/stats"))
	assert.Equal(t, "http://a/api/stats", joinURL("http://a/", "api/stats"))
	assert.Equal(t, "http://a", joinURL("http://a", ""))
}
