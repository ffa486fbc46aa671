package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"exusiai.dev/statsboard/internal/model"
	"exusiai.dev/statsboard/internal/pkg/bininfo"
	"exusiai.dev/statsboard/internal/pkg/boarderr"
	"exusiai.dev/statsboard/internal/pkg/cachectrl"
	"exusiai.dev/statsboard/internal/pkg/flog"
	"exusiai.dev/statsboard/internal/server/svr"
	"exusiai.dev/statsboard/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
	Loader        *service.Loader
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)
	meta.Get("/state", c.State)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second so health checks do not hammer the stats backend
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	cachectrl.OptInCustom(ctx, time.Now(), time.Minute*5)
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		flog.WarnFrom(ctx).Err(err).Msg("health check failed")
		return boarderr.ErrUpstreamUnavailable.WithExtras(boarderr.Extras{
			"checked_at": time.Now().UTC(),
		})
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}

type StateResponse struct {
	Stats       *model.Stats `json:"stats"`
	Error       *string      `json:"error"`
	LoadedAt    *time.Time   `json:"loaded_at"`
	AttemptedAt *time.Time   `json:"attempted_at"`
	Pending     bool         `json:"pending"`
}

// State reports the loader state as it would be rendered, without triggering a load.
func (c *Meta) State(ctx *fiber.Ctx) error {
	s := c.Loader.Snapshot()

	cachectrl.OptOut(ctx)
	return ctx.JSON(StateResponse{
		Stats:       s.Stats,
		Error:       optionalString(s.Error),
		LoadedAt:    optionalTime(s.LoadedAt),
		AttemptedAt: optionalTime(s.AttemptedAt),
		Pending:     s.Pending,
	})
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
