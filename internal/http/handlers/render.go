package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"boxcars/internal/api"
	"boxcars/internal/services"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject user and dealer badge if the middleware attached them
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if n := c.Locals("inquiryCount"); n != nil {
		data["InquiryCount"] = n
	}
	if tok, ok := c.Locals("CSRFToken").(string); ok && tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// apiCtx builds the outgoing request context: the session's token rides along
// so the gateway client attaches the Authorization header uniformly.
func apiCtx(c *fiber.Ctx, auth *services.AuthService) context.Context {
	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}
	if sid := c.Cookies("sid"); sid != "" {
		ctx = api.WithToken(ctx, auth.Token(sid))
	}
	return ctx
}
