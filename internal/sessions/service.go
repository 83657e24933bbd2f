package sessions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/autohandel/backoffice/internal/access"
	"github.com/autohandel/backoffice/internal/tokens"
)

var (
	// ErrMissingFields is returned by Login when any field is empty.
	ErrMissingFields = errors.New("username, role and password are required")
	// ErrStaleToken means the presented token does not name the stored session.
	ErrStaleToken = errors.New("session token does not match the active session")
)

// Service wraps repository operations with login/logout logic.
// Login is a convenience gate, not authentication: any non-empty
// username/role/password triple is accepted and the password is not kept.
type Service struct {
	repo   Repository
	secret string
	now    func() time.Time
}

func NewService(r Repository, secret string) *Service {
	return &Service{repo: r, secret: secret, now: time.Now}
}

// Login stores a new session and returns it with a signed session token.
func (s *Service) Login(ctx context.Context, username, role, password string) (*Session, string, error) {
	username = strings.TrimSpace(username)
	role = strings.TrimSpace(role)
	if username == "" || role == "" || password == "" {
		return nil, "", ErrMissingFields
	}
	sess := &Session{
		Username:  username,
		Role:      access.Role(role),
		LoginTime: s.now().UTC(),
	}
	token, err := tokens.GenerateSessionToken(s.secret, sess.Username, string(sess.Role), sess.LoginTime)
	if err != nil {
		return nil, "", err
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

// Logout clears the stored session.
func (s *Service) Logout(ctx context.Context) error {
	return s.repo.Delete(ctx)
}

// Current restores the stored session, or nil when nobody is logged in.
func (s *Service) Current(ctx context.Context) (*Session, error) {
	return s.repo.Load(ctx)
}

// Resolve returns the session a request acts as. Without a token the stored
// session is used. A token is honoured only while it names the stored
// session, so logout (or a newer login) invalidates it.
func (s *Service) Resolve(ctx context.Context, rawToken string) (*Session, error) {
	cur, err := s.repo.Load(ctx)
	if err != nil || cur == nil {
		return nil, err
	}
	if rawToken == "" {
		return cur, nil
	}
	claims, err := tokens.ParseSessionToken(s.secret, rawToken)
	if err != nil {
		return nil, err
	}
	if claims.Subject != cur.Username || claims.Role != string(cur.Role) || claims.LoginTime != cur.LoginTime.UnixMilli() {
		return nil, ErrStaleToken
	}
	return cur, nil
}
