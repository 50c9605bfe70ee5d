package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"boxcars/internal/log"
	"boxcars/internal/services"
	"boxcars/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": "", "Email": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Login failed", "Email": email, "CSRFToken": c.Cookies("csrf_")})
	}
	if _, ok := validate.Required(pass); !ok {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Login failed", "Email": email, "CSRFToken": c.Cookies("csrf_")})
	}

	u, err := h.Auth.Login(c.UserContext(), sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Err":       services.FailureMessage(err, "Login failed"),
			"Email":     email,
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email, "user_id": u.ID})
	return c.Redirect("/")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": "", "Name": "", "Email": "", "Phone": "", "Role": "user"})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name, nameOK := validate.Name(c.FormValue("name"))
	email, emailOK := validate.Email(c.FormValue("email"))
	pass, passOK := validate.Required(c.FormValue("password"))
	phone, phoneOK := validate.Phone(c.FormValue("phone"))
	role := validate.Role(c.FormValue("role"))

	if !nameOK || !emailOK || !passOK || !phoneOK {
		log.Security(c, "auth.signup.fail", map[string]any{"email": email, "reason": "validation"})
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
			"Err":  "Please fill in all required fields",
			"Name": name, "Email": email, "Phone": phone, "Role": role,
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	u, err := h.Auth.Signup(c.UserContext(), sid, services.SignupParams{
		Name: name, Email: email, Password: pass, Phone: phone, Role: role,
	})
	if err != nil {
		log.Security(c, "auth.signup.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("signup", fiber.Map{
			"Err":  services.FailureMessage(err, "Signup failed"),
			"Name": name, "Email": email, "Phone": phone, "Role": role,
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	log.Audit(c, "auth.signup.success", map[string]any{"email": email, "user_id": u.ID, "role": u.Role})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	// Local clearing always wins; a failed remote logout is logged inside the service.
	if err := h.Auth.Logout(c.UserContext(), sid); err != nil {
		log.Error(c, "auth.logout.store", err, nil)
	}
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
