// Package session issues, validates and revokes login session tokens.
//
// This package enables reportmix to:
// - Issue random session tokens after a successful login
// - Keep sessions in memory or on disk so they survive restarts
// - Revoke sessions on logout
package session

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// tokenBytes is the number of random bytes in a token before hex encoding.
const tokenBytes = 48

var (
	// ErrNotFound is returned when a token has no session.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidCredentials is returned by Login for a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session is an issued login session. ID identifies the session in logs
// without exposing the token.
type Session struct {
	ID       string    `json:"id"`
	Token    string    `json:"token"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

// Store keeps sessions.
type Store interface {
	Issue(ctx context.Context, username string) (*Session, error)
	Validate(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

// Credentials is the single username and password accepted by Login.
type Credentials struct {
	Username string
	Password string
}

// Login checks username and password against creds and issues a session.
func Login(ctx context.Context, store Store, creds Credentials, username, password string) (*Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(creds.Password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	return store.Issue(ctx, username)
}

// NewToken returns 48 random bytes, hex encoded.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func newSession(username string, now time.Time) (*Session, error) {
	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:       uuid.NewString(),
		Token:    token,
		Username: username,
		IssuedAt: now.UTC(),
	}, nil
}
