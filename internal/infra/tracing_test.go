package infra

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"exusiai.dev/statsboard/internal/app/appconfig"
)

func TestTracingDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{TracingExporters: []string{"bogus"}}}

	assert.NoError(t, TracingInit(conf, lc), "exporters are not built while tracing is off")
}

func TestTracingUnknownExporter(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		TracingEnabled:    true,
		TracingExporters:  []string{"bogus"},
		TracingSampleRate: 1,
	}}

	err := TracingInit(conf, lc)
	assert.True(t, errors.Is(err, ErrUnknownExporter))
}

func TestTracingStdout(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		TracingEnabled:    true,
		TracingExporters:  []string{"stdout"},
		TracingSampleRate: 1,
	}}

	require.NoError(t, TracingInit(conf, lc))
	lc.RequireStart().RequireStop()
}
