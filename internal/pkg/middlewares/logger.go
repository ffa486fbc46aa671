package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"exusiai.dev/statsboard/internal/constant"
	"exusiai.dev/statsboard/internal/pkg/flog"
)

// Logger installs the request logging chain on r. Order matters: the logger
// must be in the user context before the request id and fields are attached.
func Logger(r fiber.Router) {
	use(
		r,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", constant.RequestIDHeader),
		flog.FieldsHandler(map[string]flog.Field{
			"ip":         flog.FieldIP,
			"method":     flog.FieldMethod,
			"url":        flog.FieldURL,
			"user_agent": flog.FieldUserAgent,
		}),
		requestLogger(),
	)
}

func use(r fiber.Router, handlers ...fiber.Handler) {
	for _, h := range handlers {
		r.Use(h)
	}
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, duration time.Duration) {
		status := ctx.Response().StatusCode()
		evt := flog.InfoFrom(ctx)
		if status >= fiber.StatusInternalServerError {
			evt = flog.WarnFrom(ctx)
		}
		evt.
			Str("component", "httpreq").
			Int("status", status).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
