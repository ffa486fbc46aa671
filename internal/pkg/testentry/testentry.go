package testentry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"exusiai.dev/statsboard/internal/app"
	"exusiai.dev/statsboard/internal/app/appcontext"
)

// Populate starts the server graph against upstreamURL and fills targets from
// it. The graph is stopped when the test finishes.
func Populate(t testing.TB, upstreamURL string, targets ...any) {
	t.Helper()

	t.Setenv("STATSBOARD_UPSTREAM_URL", upstreamURL)
	// keep test runs from writing log files next to the package
	t.Setenv("STATSBOARD_LOG_FILE", "")

	opts := app.Options(appcontext.Declare(appcontext.EnvServer),
		fx.Populate(targets...),
		// for testing, the fx event log is too annoying. therefore, we use a NopLogger here
		fx.NopLogger,
	)

	// Options has configured the global logger; redirect it before any
	// constructor derives a child logger from it
	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))

	fxapp := fxtest.New(t, opts...)
	fxapp.RequireStart()
	t.Cleanup(fxapp.RequireStop)
}
