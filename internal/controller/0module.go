package controller

import (
	"go.uber.org/fx"

	controllermeta "exusiai.dev/statsboard/internal/controller/meta"
	controllerweb "exusiai.dev/statsboard/internal/controller/web"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (web)
		controllerweb.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
