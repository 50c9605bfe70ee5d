package handlers

import (
	"github.com/gofiber/fiber/v2"

	"boxcars/internal/content"
	"boxcars/internal/log"
	"boxcars/internal/services"
)

type HomeHandler struct {
	Listings *services.ListingsService
	Auth     *services.AuthService
}

// Home renders the landing page: hero search, brand showcase, the first page
// of the listings grid, testimonials, blog teasers, footer. A failed listings
// fetch degrades to an error message in the grid; the rest still renders.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	p := services.NewPaginator()
	listingsErr := ""
	if err := h.Listings.Refresh(apiCtx(c, h.Auth), p); err != nil {
		log.Error(c, "home.listings.fetch", err, nil)
		listingsErr = "Failed to fetch vehicles"
	}

	return render(c, "home", fiber.Map{
		"Tabs":          tabViews(p.ActiveTab),
		"Paginator":     p,
		"TabSlug":       slugByTab[p.ActiveTab],
		"Err":           listingsErr,
		"Brands":        content.Brands,
		"Testimonials":  content.Testimonials,
		"BlogPosts":     content.BlogPosts,
		"PriceBrackets": content.PriceBrackets,
	})
}
