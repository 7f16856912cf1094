package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps one JSON file per session. Files are named after a hash of
// the token so the token itself never appears in a path.
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// on first Issue.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, now: time.Now}
}

// Issue creates a session for username and writes it to disk.
func (s *FileStore) Issue(ctx context.Context, username string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess, err := newSession(username, s.now())
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(s.path(sess.Token), data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write session: %w", err)
	}
	return sess, nil
}

// Validate reports whether token belongs to a stored session.
func (s *FileStore) Validate(ctx context.Context, token string) (bool, error) {
	if _, err := s.Load(ctx, token); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Load reads the session stored for token.
func (s *FileStore) Load(ctx context.Context, token string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(s.path(token)) // #nosec G304 -- file name is a hash
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if sess.Token != token {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Revoke deletes the session for token.
func (s *FileStore) Revoke(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if token == "" {
		return ErrNotFound
	}
	if err := os.Remove(s.path(token)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *FileStore) path(token string) string {
	sum := sha256.Sum256([]byte(token))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}
