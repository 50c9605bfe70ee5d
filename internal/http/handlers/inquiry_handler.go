package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"boxcars/internal/api"
	"boxcars/internal/domain"
	"boxcars/internal/log"
	"boxcars/internal/services"
	"boxcars/internal/validate"
)

type InquiryHandler struct {
	Inquiries *services.InquiryService
	Auth      *services.AuthService
}

// Form shows the contact-dealer form for one vehicle. Make and model ride
// along as hidden fields so Submit can build the subject without re-fetching.
func (h *InquiryHandler) Form(c *fiber.Ctx) error {
	id := c.Params("id")
	v, err := h.Inquiries.API.GetVehicle(apiCtx(c, h.Auth), id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This vehicle is no longer available"})
		}
		log.Error(c, "inquiry.vehicle.fetch", err, map[string]any{"id": id})
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Failed to fetch vehicle details"})
	}
	return render(c, "contact", fiber.Map{"Vehicle": v, "Form": services.InquiryForm{}})
}

// Submit posts the inquiry. Any failure re-renders the form with the entered
// values intact so the user can retry; nothing is cleared.
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	vehicle := &domain.Vehicle{
		ID:    c.FormValue("vehicle_id"),
		Make:  c.FormValue("vehicle_make"),
		Model: c.FormValue("vehicle_model"),
	}
	form := services.InquiryForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Message: c.FormValue("message"),
	}

	name, nameOK := validate.Name(form.Name)
	email, emailOK := validate.Email(form.Email)
	phone, phoneOK := validate.Phone(form.Phone)
	_, msgOK := validate.Required(form.Message)
	if vehicle.ID == "" || !nameOK || !emailOK || !phoneOK || !msgOK {
		log.Security(c, "validation.fail", map[string]any{"field": "inquiry"})
		return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{
			"Vehicle": vehicle, "Form": form,
			"Err":       "Please fill in all required fields",
			"CSRFToken": c.Cookies("csrf_"),
		})
	}
	form.Name, form.Email, form.Phone = name, email, phone

	if err := h.Inquiries.Submit(apiCtx(c, h.Auth), vehicle, form); err != nil {
		log.Error(c, "inquiry.submit", err, map[string]any{"vehicle_id": vehicle.ID})
		return c.Status(fiber.StatusBadGateway).Render("contact", fiber.Map{
			"Vehicle": vehicle, "Form": form,
			"Err":       "Failed to submit inquiry",
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	log.Audit(c, "inquiry.submitted", map[string]any{"vehicle_id": vehicle.ID})
	return render(c, "inquiry_success", fiber.Map{"Vehicle": vehicle})
}
