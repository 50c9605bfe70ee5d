package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"boxcars/internal/content"
	"boxcars/internal/log"
	"boxcars/internal/services"
	"boxcars/internal/validate"
)

type SearchHandler struct {
	Search *services.SearchService
	Auth   *services.AuthService
}

// QuickSearch serves the hero search. Without params it renders the empty
// form; with params it runs one non-paginated vehicles query and shows the
// result set.
func (h *SearchHandler) QuickSearch(c *fiber.Ctx) error {
	make_ := strings.TrimSpace(c.Query("make"))
	model := strings.TrimSpace(c.Query("model"))
	rawPrice := c.Query("price")

	// Initial page load: show the empty search form without errors
	if len(c.Queries()) == 0 {
		return render(c, "search", fiber.Map{
			"Make": "", "Model": "", "Price": "",
			"PriceBrackets": content.PriceBrackets,
		})
	}

	price, ok := validate.PriceBracket(rawPrice)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "price", "value": rawPrice})
		return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
			"Err":  "Invalid price range",
			"Make": make_, "Model": model, "Price": "",
			"PriceBrackets": content.PriceBrackets,
		})
	}

	vehicles, err := h.Search.Search(apiCtx(c, h.Auth), services.SearchFilter{
		Make: make_, Model: model, PriceRange: price,
	})
	if err != nil {
		log.Error(c, "search.fetch", err, map[string]any{"make": make_, "model": model, "price": price})
		return c.Status(fiber.StatusBadGateway).Render("search", fiber.Map{
			"Err":           "Failed to fetch vehicles. Please try again.",
			"Make":          make_,
			"Model":         model,
			"Price":         price,
			"PriceBrackets": content.PriceBrackets,
		})
	}

	return render(c, "search", fiber.Map{
		"Vehicles":      vehicles,
		"Count":         len(vehicles),
		"Searched":      true,
		"Make":          make_,
		"Model":         model,
		"Price":         price,
		"PriceBrackets": content.PriceBrackets,
	})
}
