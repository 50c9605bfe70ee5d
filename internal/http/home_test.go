package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// A dead listings API degrades the grid to an error message; the marketing
// sections still render.
func TestHomeRendersDespiteListingsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	app, _ := newApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := bodyOf(t, resp)

	if !strings.Contains(body, "Failed to fetch vehicles") {
		t.Error("grid error message missing")
	}
	for _, want := range []string{
		"Find Your Perfect Car",
		"Explore Our Premium Brands",
		"What our customers say",
		"Latest Blog Posts",
		"$100,000+",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("section missing: %q", want)
		}
	}
}
