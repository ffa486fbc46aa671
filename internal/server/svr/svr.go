package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Root serves the dashboard pages.
type Root struct {
	fiber.Router
}

// Meta serves operational endpoints under "/_".
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Root, *Meta) {
	meta := app.Group("/_")

	return &Root{Router: app}, &Meta{Router: meta}
}
