package handlers_test

import (
	"bytes"
	"log"
	"net/url"
	"strings"
	"testing"
)

// Auth outcomes land in the JSON log: failures as warn, successes as audit.
func TestAuthEventsAreLogged(t *testing.T) {
	srv, _ := authUpstream(t)
	app, _ := newApp(t, srv.URL)

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	tok := csrfToken(t, app)
	resp, err := app.Test(postForm("/login", tok, url.Values{
		"email":    {"dana@example.com"},
		"password": {"wrong"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	out := buf.String()
	if !strings.Contains(out, `"action":"auth.login.fail"`) || !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("failed login not logged as warn: %s", out)
	}
	if strings.Contains(out, "wrong") {
		t.Error("password leaked into the log")
	}

	buf.Reset()
	resp, err = app.Test(postForm("/login", tok, url.Values{
		"email":    {"dana@example.com"},
		"password": {"Passw0rd!"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	out = buf.String()
	if !strings.Contains(out, `"action":"auth.login.success"`) || !strings.Contains(out, `"level":"audit"`) {
		t.Errorf("successful login not logged as audit: %s", out)
	}
	if strings.Contains(out, "Passw0rd!") {
		t.Error("password leaked into the log")
	}
}
