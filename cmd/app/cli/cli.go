package cli

import (
	"context"

	"go.uber.org/fx"

	"exusiai.dev/statsboard/internal/app"
	"exusiai.dev/statsboard/internal/app/appcontext"
)

// Start builds the CLI graph with module appended and starts it. The returned
// stop function releases everything the graph started.
func Start(module fx.Option) (stop func(), err error) {
	fxapp := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := fxapp.Start(context.Background()); err != nil {
		return nil, err
	}

	return func() {
		_ = fxapp.Stop(context.Background())
	}, nil
}

// Deps populates a T from the CLI graph.
func Deps[T any]() (deps T, stop func(), err error) {
	stop, err = Start(fx.Populate(&deps))
	return deps, stop, err
}
