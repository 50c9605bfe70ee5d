package handlers

import (
	"github.com/gofiber/fiber/v2"

	"boxcars/internal/log"
	"boxcars/internal/services"
	"boxcars/internal/validate"
)

type ListingsHandler struct {
	Listings *services.ListingsService
	Auth     *services.AuthService
}

// URL-safe slugs for the filter tabs; the cookie remembers the last one so a
// tab switch can be told apart from a page jump.
var tabBySlug = map[string]string{
	"in-stock":  services.TabInStock,
	"new-cars":  services.TabNewCars,
	"used-cars": services.TabUsedCars,
}

var slugByTab = map[string]string{
	services.TabInStock:  "in-stock",
	services.TabNewCars:  "new-cars",
	services.TabUsedCars: "used-cars",
}

type tabView struct {
	Label  string
	Slug   string
	Active bool
}

func tabViews(active string) []tabView {
	views := make([]tabView, 0, len(services.Tabs))
	for _, t := range services.Tabs {
		views = append(views, tabView{Label: t, Slug: slugByTab[t], Active: t == active})
	}
	return views
}

// Grid serves the listings section. Tab and page arrive as query params; the
// previous tab comes from a cookie so that a tab change resets the page to 1
// and the whole transition costs exactly one upstream fetch.
func (h *ListingsHandler) Grid(c *fiber.Ctx) error {
	p := services.NewPaginator()
	if prev, ok := tabBySlug[c.Cookies("tab")]; ok {
		p.ActiveTab = prev
	}
	tab := p.ActiveTab
	if t, ok := tabBySlug[c.Query("tab")]; ok {
		tab = t
	}
	p.Select(tab, validate.Page(c.Query("page")))

	c.Cookie(&fiber.Cookie{
		Name:     "tab",
		Value:    slugByTab[p.ActiveTab],
		Path:     "/",
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if err := h.Listings.Refresh(apiCtx(c, h.Auth), p); err != nil {
		log.Error(c, "listings.fetch", err, map[string]any{"tab": p.ActiveTab, "page": p.CurrentPage})
		return c.Status(fiber.StatusBadGateway).Render("listings", fiber.Map{
			"Tabs": tabViews(p.ActiveTab), "Paginator": p,
			"Err": "Failed to fetch vehicles",
		})
	}

	return render(c, "listings", fiber.Map{
		"Tabs":      tabViews(p.ActiveTab),
		"Paginator": p,
		"TabSlug":   slugByTab[p.ActiveTab],
	})
}
