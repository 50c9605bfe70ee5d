package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"boxcars/internal/api"
	"boxcars/internal/config"
	"boxcars/internal/format"
	"boxcars/internal/http/handlers"
	applog "boxcars/internal/log"
	"boxcars/internal/services"
	"boxcars/internal/session"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	sessions, err := session.Open(cfg.SessionDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring: one gateway client, one auth service
	client := api.New(cfg.APIBaseURL)
	authSvc := &services.AuthService{API: client, Sessions: sessions}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.AddFunc("price", format.Price)
	engine.AddFunc("mileage", format.Mileage)
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in; restores a persisted token through
	// /auth/me on the session's first hit after a restart. For dealers the
	// header badge count is fetched best-effort.
	app.Use(func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Next()
		}
		u, err := authSvc.CurrentUser(c.UserContext(), sid)
		if err != nil {
			// Failed restore discards the token; logged, never user-facing.
			applog.Info(c, "auth.restore.fail", map[string]any{"err": err.Error()})
			return c.Next()
		}
		if u == nil {
			return c.Next()
		}
		c.Locals("user", u)
		if u.IsDealer() {
			if contacts, err := authSvc.PendingInquiries(c.UserContext(), sid, u); err == nil {
				c.Locals("inquiryCount", len(contacts))
			} else {
				applog.Info(c, "inbox.badge.fail", map[string]any{"err": err.Error()})
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			formTok := c.FormValue("csrf")
			applog.Security(c, "csrf.fail", map[string]any{"form": formTok})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(client, authSvc)

	// Public pages
	app.Get("/", deps.HomeHandler.Home)
	app.Get("/listings", deps.ListingsHandler.Grid)
	app.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.SearchHandler.QuickSearch)

	// Vehicle pages
	app.Get("/vehicle", func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This vehicle is no longer available"})
	})
	app.Get("/vehicle/:id", deps.VehicleHandler.Detail)
	app.Get("/vehicle/:id/contact", deps.InquiryHandler.Form)
	app.Post("/inquiries", deps.InquiryHandler.Submit)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Post("/logout", authH.Logout)

	// Dealer inbox
	inbox := app.Group("/inbox", handlers.RequireDealer(authSvc))
	inbox.Get("/", deps.InboxHandler.List)
	inbox.Get("/:id", deps.InboxHandler.Detail)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
