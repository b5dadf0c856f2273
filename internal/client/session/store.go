// Package session holds the signed-in identity and mirrors it into the local
// metadata table so it survives restarts.
package session

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/infowise/internal/dbx"
	"github.com/dmitrijs2005/infowise/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Storage keys, one per session field.
const (
	KeyToken  = "token"
	KeyUserID = "userId"
	KeyEmail  = "email"
	KeyRole   = "role"
)

// Listener receives the new session after every change; nil means signed out.
type Listener func(s *models.Session)

// Store is the single source of truth for "is a user signed in".
//
// Storage failures never fail an operation: they are logged and the
// in-memory state still changes.
type Store struct {
	db     *sql.DB
	repo   metadata.Repository
	logger logging.Logger
	now    func() time.Time

	// notifyMu serialises change+notify so listeners see changes in order.
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	current   *models.Session
	listeners []Listener
}

func NewStore(db *sql.DB, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		db:     db,
		repo:   metadata.NewSQLiteRepository(db),
		logger: logger.With("component", "session"),
		now:    time.Now,
	}
}

// Subscribe registers fn for every subsequent change. fn must not call
// Login, Logout or Restore.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Current returns a copy of the signed-in session.
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Restore rebuilds the session from storage. It succeeds only when all four
// keys are present; a JWT whose exp has passed is discarded with the rest of
// the stored data. It reports whether a session was restored.
func (s *Store) Restore(ctx context.Context) bool {
	restored, ok := s.load(ctx)
	if ok && tokenExpired(restored.Token, s.now()) {
		s.logger.Info(ctx, "session: stored token expired, discarding", "user_id", restored.UserID)
		s.purge(ctx)
		ok = false
	}

	if !ok {
		s.set(nil, nil)
		return false
	}

	s.set(&restored, nil)
	s.logger.Info(ctx, "session: restored", "user_id", restored.UserID, "email", restored.Email)
	return true
}

// Login makes sess the current session and persists its four fields in one
// transaction.
func (s *Store) Login(ctx context.Context, sess models.Session) {
	stored := sess
	s.set(&stored, func() {
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return metadata.NewSQLiteRepository(tx).SetMany(ctx, fields(stored))
		})
		if err != nil {
			s.logger.Warn(ctx, "session: persist failed", "error", err)
		}
	})
	s.logger.Info(ctx, "session: signed in", "user_id", sess.UserID, "email", sess.Email)
}

// Logout forgets the session and purges the whole storage area.
func (s *Store) Logout(ctx context.Context) {
	s.set(nil, func() { s.purge(ctx) })
	s.logger.Info(ctx, "session: signed out")
}

// set swaps the in-memory session, runs persist (if any) under the same
// lock, then notifies listeners.
func (s *Store) set(sess *models.Session, persist func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.current = sess
	if persist != nil {
		persist()
	}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		if sess == nil {
			fn(nil)
			continue
		}
		cp := *sess
		fn(&cp)
	}
}

func (s *Store) load(ctx context.Context) (models.Session, bool) {
	values, err := s.repo.GetMany(ctx, KeyToken, KeyUserID, KeyEmail, KeyRole)
	if err != nil {
		s.logger.Warn(ctx, "session: read failed", "error", err)
		return models.Session{}, false
	}

	sess := models.Session{
		Token:  string(values[KeyToken]),
		UserID: models.UserID(values[KeyUserID]),
		Email:  string(values[KeyEmail]),
		Role:   string(values[KeyRole]),
	}
	return sess, sess.Complete()
}

func (s *Store) purge(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "session: purge failed", "error", err)
	}
}

func fields(s models.Session) map[string][]byte {
	return map[string][]byte{
		KeyToken:  []byte(s.Token),
		KeyUserID: []byte(s.UserID.String()),
		KeyEmail:  []byte(s.Email),
		KeyRole:   []byte(s.Role),
	}
}

// tokenExpired reports whether token is a JWT whose exp is not after now.
// Opaque tokens never expire client-side.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
