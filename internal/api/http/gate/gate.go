// Package gate adapts guard pipelines to Fiber handlers.
package gate

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/role-gate/internal/guard"
)

const requestKey = "guard_request"

// Gate runs guards in order against the request and calls the next handler
// only if all of them pass. The first rejection is returned to the error
// terminal unchanged.
func Gate(guards ...guard.Guard) fiber.Handler {
	pipeline := guard.Pipeline(guards)
	return func(c *fiber.Ctx) error {
		if err := pipeline.Run(c.UserContext(), RequestFrom(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequestFrom returns the guard state for this request, creating it on first
// use. Every Gate on a route shares the same value.
func RequestFrom(c *fiber.Ctx) *guard.Request {
	if req, ok := c.Locals(requestKey).(*guard.Request); ok {
		return req
	}
	req := guard.NewRequest(
		func(key string) string { return c.Get(key) },
		func(out any) error {
			if len(c.Body()) == 0 {
				return nil
			}
			return c.BodyParser(out)
		},
	)
	c.Locals(requestKey, req)
	return req
}
