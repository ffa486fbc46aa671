package meta

import (
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/statsboard/internal/server/svr"
)

// RegisterIndex exposes the liveness check used by the deployment.
func RegisterIndex(root *svr.Root) {
	root.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok": true,
		})
	})
}
