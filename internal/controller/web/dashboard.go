package web

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/statsboard/internal/pkg/cachectrl"
	"exusiai.dev/statsboard/internal/pkg/flog"
	"exusiai.dev/statsboard/internal/server/svr"
	"exusiai.dev/statsboard/internal/service"
	"exusiai.dev/statsboard/internal/view"
)

type Dashboard struct {
	fx.In

	Loader *service.Loader
}

func RegisterDashboard(root *svr.Root, c Dashboard) {
	root.Get("/", c.Index)
	root.Post("/refresh", c.Refresh)
}

// Index renders the dashboard. The first view in the process lifetime loads the
// stats before rendering; later views show whatever the loader holds.
func (c *Dashboard) Index(ctx *fiber.Ctx) error {
	c.Loader.Mount(ctx.UserContext())

	var buf bytes.Buffer
	if err := view.Render(&buf, view.Build(c.Loader.Snapshot())); err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}

// Refresh starts a reload and sends the browser back to the dashboard. The
// page it lands on shows no error from earlier attempts.
func (c *Dashboard) Refresh(ctx *fiber.Ctx) error {
	c.Loader.Refresh()
	flog.DebugFrom(ctx).Msg("dashboard: refresh requested")

	return ctx.Redirect("/", fiber.StatusSeeOther)
}
