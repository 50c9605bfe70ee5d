package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"boxcars/internal/api"
	"boxcars/internal/log"
	"boxcars/internal/services"
)

type VehicleHandler struct {
	API  *api.Client
	Auth *services.AuthService
}

func (h *VehicleHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	v, err := h.API.GetVehicle(apiCtx(c, h.Auth), id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This vehicle is no longer available"})
		}
		log.Error(c, "vehicle.fetch", err, map[string]any{"id": id})
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Failed to fetch vehicle details"})
	}
	return render(c, "vehicle", fiber.Map{"Vehicle": v})
}
