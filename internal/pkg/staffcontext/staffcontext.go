package staffcontext

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// Locals keys set by the API key middleware.
	KeyContext = "STAFF_CONTEXT"
	KeyStaffID = "STAFF_ID"
	KeyName    = "STAFF_NAME"
)

// StaffContext is the request-scoped identity of an authenticated staff
// member.
type StaffContext struct {
	StaffID       uint
	Name          string
	Authenticated bool
}

// Get returns the staff context for the request, or a zero value when the
// request did not pass the API key middleware.
func Get(c *fiber.Ctx) StaffContext {
	if v := c.Locals(KeyContext); v != nil {
		if sc, ok := v.(StaffContext); ok {
			return sc
		}
	}
	return StaffContext{}
}

// Set attaches a staff context to the request.
func Set(c *fiber.Ctx, sc StaffContext) {
	c.Locals(KeyContext, sc)
	c.Locals(KeyStaffID, sc.StaffID)
	c.Locals(KeyName, sc.Name)
}
