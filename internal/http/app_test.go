package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"

	"boxcars/internal/api"
	"boxcars/internal/format"
	"boxcars/internal/http/handlers"
	"boxcars/internal/services"
	"boxcars/internal/session"
)

// newApp wires the real handlers against a fake marketplace API at upstream,
// with the same template engine and csrf setup the server uses.
func newApp(t *testing.T, upstream string) (*fiber.App, *services.AuthService) {
	t.Helper()

	store, err := session.Open(":memory:")
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	t.Cleanup(func() { store.DB.Close() })

	client := api.New(upstream)
	auth := &services.AuthService{API: client, Sessions: store}

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("price", format.Price)
	engine.AddFunc("mileage", format.Mileage)

	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(client, auth)
	authH := &handlers.AuthHandler{Auth: auth}

	app.Get("/", deps.HomeHandler.Home)
	app.Get("/listings", deps.ListingsHandler.Grid)
	app.Get("/search", deps.SearchHandler.QuickSearch)
	app.Get("/vehicle/:id", deps.VehicleHandler.Detail)
	app.Get("/vehicle/:id/contact", deps.InquiryHandler.Form)
	app.Post("/inquiries", deps.InquiryHandler.Submit)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Post("/logout", authH.Logout)

	return app, auth
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return string(b)
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken fetches any GET page and returns the issued csrf cookie.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	tok := cookieValue(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

// postForm builds a form POST carrying the csrf token both as field and cookie.
func postForm(path, csrfTok string, form url.Values) *http.Request {
	form.Set("csrf", csrfTok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	return req
}
