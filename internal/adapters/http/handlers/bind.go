package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"finz-affiliate/internal/adapters/http/middleware"
	"finz-affiliate/internal/pkg/validation"
)

var errInvalidBody = errors.New("invalid request body")

// bind parses the JSON body into out and validates it
func bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return validation.Struct(out)
}

// currentUserID returns the admin id set by the auth middleware
func currentUserID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(middleware.LocalUserID).(string)
	return id, ok && id != ""
}

// refererPath is the page path of the Referer header, used when a beacon names no path
func refererPath(c *fiber.Ctx) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
