package handlers

import (
	"github.com/gofiber/fiber/v2"

	"boxcars/internal/domain"
	"boxcars/internal/log"
	"boxcars/internal/services"
)

// InboxHandler serves a dealer's received inquiries. Routes are mounted behind
// RequireDealer.
type InboxHandler struct {
	Auth *services.AuthService
}

func (h *InboxHandler) List(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.UserProfile)
	contacts, err := h.Auth.PendingInquiries(apiCtx(c, h.Auth), c.Cookies("sid"), u)
	if err != nil {
		log.Error(c, "inbox.fetch", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("inbox", fiber.Map{"Err": "Could not load inquiries. Please retry."})
	}
	return render(c, "inbox", fiber.Map{"Contacts": contacts, "Count": len(contacts)})
}

// Detail shows one inquiry. The API exposes no per-contact endpoint, so it is
// picked out of the list response.
func (h *InboxHandler) Detail(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.UserProfile)
	contacts, err := h.Auth.PendingInquiries(apiCtx(c, h.Auth), c.Cookies("sid"), u)
	if err != nil {
		log.Error(c, "inbox.fetch", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("inbox", fiber.Map{"Err": "Could not load inquiries. Please retry."})
	}
	id := c.Params("id")
	for i := range contacts {
		if contacts[i].ID == id {
			return render(c, "contact_detail", fiber.Map{"Contact": contacts[i]})
		}
	}
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Inquiry not found"})
}
