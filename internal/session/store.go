// Package session persists per-browser sessions: the opaque API token and the
// last profile snapshot returned by the marketplace. Only the auth service
// writes here; everything else reads.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"boxcars/internal/domain"
)

type Store struct {
	DB *sqlx.DB
}

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sessions(
  id           TEXT PRIMARY KEY,        -- same value as the 'sid' cookie
  token        TEXT NOT NULL DEFAULT '',
  profile_json TEXT NOT NULL DEFAULT '',
  created_at   TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen    TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// Bind stores the token and profile for sid, replacing any prior session state.
func (s *Store) Bind(sid, token string, u *domain.UserProfile) error {
	profile := ""
	if u != nil {
		b, err := json.Marshal(u)
		if err != nil {
			return err
		}
		profile = string(b)
	}
	_, err := s.DB.Exec(`INSERT INTO sessions(id,token,profile_json,last_seen)
                         VALUES(?,?,?,CURRENT_TIMESTAMP)
                         ON CONFLICT(id) DO UPDATE SET token=excluded.token,
                           profile_json=excluded.profile_json, last_seen=CURRENT_TIMESTAMP`,
		sid, token, profile)
	return err
}

// Token returns the stored API token for sid, or "" when the session is
// anonymous or unknown.
func (s *Store) Token(sid string) (string, error) {
	var tok string
	err := s.DB.Get(&tok, `SELECT token FROM sessions WHERE id=?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return tok, nil
}

// Profile returns the cached profile snapshot, or nil when none is stored.
func (s *Store) Profile(sid string) (*domain.UserProfile, error) {
	var raw string
	err := s.DB.Get(&raw, `SELECT profile_json FROM sessions WHERE id=?`, sid)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && raw == "") {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveProfile refreshes the cached snapshot without touching the token.
func (s *Store) SaveProfile(sid string, u *domain.UserProfile) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(`UPDATE sessions SET profile_json=?, last_seen=CURRENT_TIMESTAMP WHERE id=?`, string(b), sid)
	return err
}

// Clear drops the token and profile but keeps the row, so the sid cookie stays
// usable as an anonymous session.
func (s *Store) Clear(sid string) error {
	_, err := s.DB.Exec(`UPDATE sessions SET token='', profile_json='', last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
