package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the request ID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key the request ID is stored under.
	LocalsKey = "ray_id"
)

// New creates the RayID middleware. An incoming X-Ray-ID header is reused so
// IDs survive proxies; otherwise a new UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromContext returns the request ID stored by the middleware, if any.
func FromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
