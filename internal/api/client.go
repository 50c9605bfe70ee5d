// Package api is the single gateway to the remote marketplace REST API.
// Every component talks to the API through one Client bound to one base URL;
// the bearer token travels in the request context and is attached by a
// RoundTripper so no call site composes auth headers itself.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"boxcars/internal/domain"
)

type tokenKey struct{}

// WithToken returns a context carrying the session's bearer token. Requests
// issued with this context get an Authorization header; all others go out bare.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

type bearerTransport struct {
	next http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok, ok := req.Context().Value(tokenKey{}).(string); ok && tok != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return t.next.RoundTrip(req)
}

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: &bearerTransport{next: http.DefaultTransport},
		},
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"` // user | dealer
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

// VehicleQuery covers both the paginated grid (Page/Limit/Condition) and the
// hero quick search (Make/Model/MinPrice/MaxPrice). Zero fields are omitted.
type VehicleQuery struct {
	Page      int
	Limit     int
	Condition string
	Make      string
	Model     string
	MinPrice  string
	MaxPrice  string
}

func (q VehicleQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Condition != "" {
		v.Set("condition", q.Condition)
	}
	if q.Make != "" {
		v.Set("make", q.Make)
	}
	if q.Model != "" {
		v.Set("model", q.Model)
	}
	if q.MinPrice != "" {
		v.Set("minPrice", q.MinPrice)
	}
	if q.MaxPrice != "" {
		v.Set("maxPrice", q.MaxPrice)
	}
	return v
}

type VehicleList struct {
	Vehicles   []domain.Vehicle       `json:"vehicles"`
	Pagination domain.PaginationState `json:"pagination"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, Credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*domain.UserProfile, error) {
	var out struct {
		User domain.UserProfile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, struct{}{}, nil)
}

func (c *Client) ListVehicles(ctx context.Context, q VehicleQuery) (*VehicleList, error) {
	var out VehicleList
	if err := c.do(ctx, http.MethodGet, "/vehicles", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	var out struct {
		Vehicle domain.Vehicle `json:"vehicle"`
	}
	if err := c.do(ctx, http.MethodGet, "/vehicles/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Vehicle, nil
}

func (c *Client) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Contacts []domain.Contact `json:"contacts"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/contact", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data.Contacts, nil
}

func (c *Client) SubmitInquiry(ctx context.Context, inq domain.Inquiry) error {
	return c.do(ctx, http.MethodPost, "/contact", nil, inq, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s: %v", ErrNetwork, path, err)
		}
	}
	return nil
}
