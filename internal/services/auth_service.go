package services

import (
	"context"
	"errors"

	"boxcars/internal/api"
	"boxcars/internal/domain"
	"boxcars/internal/session"
)

// AuthService owns the session lifecycle: login, signup, logout, and restoring
// a persisted token on a session's first hit. It is the only writer of the
// session store.
type AuthService struct {
	API      *api.Client
	Sessions *session.Store
}

type SignupParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string // user | dealer, defaults to user
}

func (s *AuthService) Login(ctx context.Context, sid, email, password string) (*domain.UserProfile, error) {
	res, err := s.API.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Bind(sid, res.Token, &res.User); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (s *AuthService) Signup(ctx context.Context, sid string, p SignupParams) (*domain.UserProfile, error) {
	role := p.Role
	if role != "dealer" {
		role = "user"
	}
	res, err := s.API.Register(ctx, api.Registration{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
		Phone:    p.Phone,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Bind(sid, res.Token, &res.User); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// Logout is unconditionally effective locally: the remote call is best-effort
// and its outcome never blocks clearing the session.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	tok, _ := s.Sessions.Token(sid)
	if tok != "" {
		if err := s.API.Logout(api.WithToken(ctx, tok)); err != nil {
			// swallowed; the caller may log it
			_ = err
		}
	}
	return s.Sessions.Clear(sid)
}

// CurrentUser resolves the session's profile. A token with no cached profile
// means a restart happened since login; restore via /auth/me. A failed restore
// discards the token and leaves the session anonymous — the failure is the
// caller's to log, never a user-facing error.
func (s *AuthService) CurrentUser(ctx context.Context, sid string) (*domain.UserProfile, error) {
	tok, err := s.Sessions.Token(sid)
	if err != nil || tok == "" {
		return nil, err
	}
	if u, err := s.Sessions.Profile(sid); err == nil && u != nil {
		return u, nil
	}
	u, err := s.API.Me(api.WithToken(ctx, tok))
	if err != nil {
		_ = s.Sessions.Clear(sid)
		return nil, err
	}
	if err := s.Sessions.SaveProfile(sid, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Token exposes the stored token read-only, for requests that must go out
// authenticated.
func (s *AuthService) Token(sid string) string {
	tok, _ := s.Sessions.Token(sid)
	return tok
}

// PendingInquiries fetches a dealer's inbox for the header badge. Non-dealers
// get an empty list without a network call.
func (s *AuthService) PendingInquiries(ctx context.Context, sid string, u *domain.UserProfile) ([]domain.Contact, error) {
	if !u.IsDealer() {
		return nil, nil
	}
	return s.API.ListContacts(api.WithToken(ctx, s.Token(sid)))
}

// FailureMessage converts an auth error into the string shown to the user:
// the server's own message when it sent one, the endpoint fallback for bare
// rejections, and a generic line for everything else.
func FailureMessage(err error, fallback string) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	var se *api.StatusError
	if errors.As(err, &se) {
		return fallback
	}
	return "An unexpected error occurred"
}
