package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/worklink-app/go-work-link/internal/config"
	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/models"
)

type sqliteStore struct {
	db     *sql.DB
	logger *logger.Logger

	mu       sync.RWMutex
	cur      models.Session
	watchers map[uuid.UUID]chan models.Session
}

// NewStore opens (or creates) the local session database, runs migrations,
// loads the persisted session row, and returns a ready [Store].
func NewStore(cfg config.ClientStorage, log *logger.Logger) (Store, error) {
	db, err := connectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect session db: %w", err)
	}

	s := &sqliteStore{
		db:       db,
		logger:   log,
		watchers: make(map[uuid.UUID]chan models.Session),
	}
	if err = s.load(context.Background()); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	return s, nil
}

func (s *sqliteStore) load(ctx context.Context) error {
	row := s.db.QueryRowContext(ctx,
		`SELECT access_token, user_id, role, language, onboarding_done FROM sessions WHERE id = 1`)

	var cur models.Session
	var onboarding int
	if err := row.Scan(&cur.AccessToken, &cur.UserID, &cur.Role, &cur.Language, &onboarding); err != nil {
		return fmt.Errorf("scan session row: %w", err)
	}
	cur.OnboardingDone = onboarding != 0

	s.mu.Lock()
	s.cur = cur
	s.mu.Unlock()

	return nil
}

// Current implements [Store].
func (s *sqliteStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// TokenValue implements [Store].
func (s *sqliteStore) TokenValue() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.AccessToken
}

// RoleValue implements [Store].
func (s *sqliteStore) RoleValue() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Role
}

// Save implements [Store]. The onboarding flag of the stored session is
// preserved regardless of the value carried by sess.
func (s *sqliteStore) Save(ctx context.Context, sess models.Session) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions
		    SET access_token = ?, user_id = ?, role = ?, language = ?, updated_at = datetime('now')
		  WHERE id = 1`,
		sess.AccessToken, sess.UserID, sess.Role, sess.Language)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	sess.OnboardingDone = s.cur.OnboardingDone
	s.cur = sess
	cur := s.cur
	s.mu.Unlock()

	s.notify(cur)
	return nil
}

// SetOnboardingDone implements [Store].
func (s *sqliteStore) SetOnboardingDone(ctx context.Context, done bool) error {
	val := 0
	if done {
		val = 1
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET onboarding_done = ?, updated_at = datetime('now') WHERE id = 1`, val)
	if err != nil {
		return fmt.Errorf("save onboarding flag: %w", err)
	}

	s.mu.Lock()
	s.cur.OnboardingDone = done
	s.mu.Unlock()

	return nil
}

// Clear implements [Store]. Language and the onboarding flag survive.
func (s *sqliteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions
		    SET access_token = '', user_id = '', role = '', updated_at = datetime('now')
		  WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.cur.AccessToken = ""
	s.cur.UserID = ""
	s.cur.Role = ""
	cur := s.cur
	s.mu.Unlock()

	s.notify(cur)
	return nil
}

// Changes implements [Store].
func (s *sqliteStore) Changes() <-chan models.Session {
	ch := make(chan models.Session, 1)

	s.mu.Lock()
	s.watchers[uuid.New()] = ch
	s.mu.Unlock()

	return ch
}

// notify pushes the new state to every watcher, conflating: a stale pending
// value is replaced by the latest one so senders never block.
func (s *sqliteStore) notify(cur models.Session) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.watchers {
		select {
		case ch <- cur:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- cur:
			default:
			}
		}
	}
}

// Close implements [Store].
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
