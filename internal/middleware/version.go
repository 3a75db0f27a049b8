package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersionKey is the fiber Locals key holding the requested API version.
const APIVersionKey = "apiVersion"

// VersionMiddleware parses the X-Api-Version header, stores it in context
// and echoes it on the response.
func VersionMiddleware(current string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", current)

		// Support short aliases
		switch version {
		case "1", "1.0":
			version = "1.0.0"
		}

		c.Locals(APIVersionKey, version)
		c.Set("X-Api-Version", current)

		return c.Next()
	}
}
