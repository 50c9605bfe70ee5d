package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func authUpstream(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	lastAuth := new(string)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "Passw0rd!" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  map[string]string{"id": "u1", "name": "Dana", "email": creds.Email, "role": "user"},
		})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		*lastAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	mux.HandleFunc("GET /vehicles", func(w http.ResponseWriter, r *http.Request) {
		*lastAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"vehicles": []any{}, "pagination": map[string]any{}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, lastAuth
}

func TestLoginSuccessBindsSession(t *testing.T) {
	srv, lastAuth := authUpstream(t)
	app, auth := newApp(t, srv.URL)

	tok := csrfToken(t, app)
	resp, err := app.Test(postForm("/login", tok, url.Values{
		"email":    {"dana@example.com"},
		"password": {"Passw0rd!"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want redirect", resp.StatusCode)
	}
	sid := cookieValue(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie not set on login")
	}
	if got := auth.Token(sid); got != "tok-1" {
		t.Fatalf("session token = %q, want tok-1", got)
	}

	// a later page hit with the sid goes upstream authenticated
	req := httptest.NewRequest("GET", "/listings", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp2, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if *lastAuth != "Bearer tok-1" {
		t.Fatalf("Authorization = %q, want Bearer tok-1", *lastAuth)
	}
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	srv, _ := authUpstream(t)
	app, auth := newApp(t, srv.URL)

	tok := csrfToken(t, app)
	resp, err := app.Test(postForm("/login", tok, url.Values{
		"email":    {"dana@example.com"},
		"password": {"wrong"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := bodyOf(t, resp)
	if !strings.Contains(body, "Invalid credentials") {
		t.Error("server message not surfaced")
	}
	if !strings.Contains(body, `value="dana@example.com"`) {
		t.Error("email not preserved in the form")
	}
	if sid := cookieValue(resp, "sid"); sid != "" && auth.Token(sid) != "" {
		t.Error("rejected login must not bind a token")
	}
}

func TestLoginRejectsMalformedEmailLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("malformed email must not reach the API")
	}))
	defer srv.Close()
	app, _ := newApp(t, srv.URL)

	tok := csrfToken(t, app)
	resp, err := app.Test(postForm("/login", tok, url.Values{
		"email":    {"not-an-email"},
		"password": {"x"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body := bodyOf(t, resp); !strings.Contains(body, "Login failed") {
		t.Error("generic failure message missing")
	}
}

func TestLogoutClearsSessionAndCookie(t *testing.T) {
	srv, lastAuth := authUpstream(t)
	app, auth := newApp(t, srv.URL)

	tok := csrfToken(t, app)
	resp, err := app.Test(postForm("/login", tok, url.Values{
		"email":    {"dana@example.com"},
		"password": {"Passw0rd!"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	sid := cookieValue(resp, "sid")

	req := postForm("/logout", tok, url.Values{})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp2, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want redirect", resp2.StatusCode)
	}
	if *lastAuth != "Bearer tok-1" {
		t.Errorf("remote logout Authorization = %q", *lastAuth)
	}
	if auth.Token(sid) != "" {
		t.Error("token survives logout")
	}
	for _, c := range resp2.Cookies() {
		if c.Name == "sid" && c.Value != "" {
			t.Errorf("sid cookie not expired: %q", c.Value)
		}
	}
}

func TestSignupDefaultsRoleToUser(t *testing.T) {
	var gotRole string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			http.NotFound(w, r)
			return
		}
		var reg struct {
			Role string `json:"role"`
		}
		_ = json.NewDecoder(r.Body).Decode(&reg)
		gotRole = reg.Role
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-2",
			"user":  map[string]string{"id": "u2", "name": "Riley", "role": reg.Role},
		})
	}))
	defer srv.Close()
	app, _ := newApp(t, srv.URL)

	tok := csrfToken(t, app)
	resp, err := app.Test(postForm("/signup", tok, url.Values{
		"name":     {"Riley"},
		"email":    {"riley@example.com"},
		"password": {"Passw0rd!"},
		"role":     {"admin"}, // unknown roles collapse to user
	}))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want redirect", resp.StatusCode)
	}
	if gotRole != "user" {
		t.Fatalf("role = %q, want user", gotRole)
	}
}
