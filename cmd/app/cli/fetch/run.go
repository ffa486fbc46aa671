package fetch

import (
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/statsboard/internal/view"
)

func run(ctx context.Context, w io.Writer, deps CommandDeps, asJSON bool) error {
	loadErr := deps.Loader.Load(ctx)
	state := deps.Loader.Snapshot()

	if asJSON {
		if loadErr != nil {
			return errors.Wrap(loadErr, "fetch")
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Stats)
	}

	if err := view.RenderText(w, view.Build(state)); err != nil {
		return err
	}

	if loadErr != nil {
		log.Error().Err(loadErr).Msg("fetch: failed to load stats")
		return errors.Wrap(loadErr, "fetch")
	}
	return nil
}
