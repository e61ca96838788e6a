package account

import (
	"context"
	"sync"
	"time"

	"adminconsole-go/internal/domain/events"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/logging"
	"adminconsole-go/internal/platform/storage"

	"github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v5"
)

// StorageKey names the persisted session entry.
const StorageKey = "auth-storage"

// Store is a pure session container: two states, anonymous and
// authenticated. Every transition is written through to storage so a
// restart lands in the same state. No network calls originate here.
type Store struct {
	mutex   sync.RWMutex
	session Session

	kv     storage.KV
	bus    *events.Bus
	logger *logging.Logger
}

// NewStore builds an anonymous session store.
func NewStore(kv storage.KV, bus *events.Bus, logger *logging.Logger) *Store {
	return &Store{
		kv:     kv,
		bus:    bus,
		logger: logger,
	}
}

// Rehydrate restores the persisted session at startup. A missing or
// unparsable entry leaves the store anonymous without error. A token
// whose expiry claim has passed is discarded rather than restored.
func (s *Store) Rehydrate(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(errors.KindStorage, "account.rehydrate", "failed to read session entry", err)
	}

	var session Session
	if err := sonic.Unmarshal(raw, &session); err != nil {
		s.logger.WarnTag("auth", "discarding unparsable session entry", "error", err)
		return nil
	}
	session.IsAuthenticated = session.Token != ""

	if session.Token != "" && tokenExpired(session.Token) {
		s.logger.InfoTag("auth", "persisted token expired, staying anonymous")
		return s.ClearAuth(ctx)
	}

	s.mutex.Lock()
	s.session = session
	s.mutex.Unlock()

	if session.IsAuthenticated {
		s.logger.InfoTag("auth", "session restored", "user", session.ActorName())
	}
	return nil
}

// SetAuth transitions to authenticated, overwriting any prior session.
func (s *Store) SetAuth(ctx context.Context, user *User, token string) error {
	session := Session{
		User:            user,
		Token:           token,
		IsAuthenticated: token != "",
	}

	s.mutex.Lock()
	s.session = session
	s.mutex.Unlock()

	if err := s.persist(ctx, session); err != nil {
		return err
	}
	s.bus.Publish(events.EventSignedIn, events.AccountEventData{
		UserName: session.ActorName(),
		Email:    emailOf(user),
	})
	return nil
}

// ClearAuth transitions to anonymous.
func (s *Store) ClearAuth(ctx context.Context) error {
	s.mutex.Lock()
	prior := s.session
	s.session = Session{}
	s.mutex.Unlock()

	if err := s.persist(ctx, Session{}); err != nil {
		return err
	}
	if prior.IsAuthenticated {
		s.bus.Publish(events.EventSignedOut, events.AccountEventData{
			UserName: prior.ActorName(),
			Email:    emailOf(prior.User),
		})
	}
	return nil
}

// SetUser replaces the signed-in user's profile and persists the
// session. The token is untouched. Fails when anonymous.
func (s *Store) SetUser(ctx context.Context, user *User) error {
	s.mutex.Lock()
	if !s.session.IsAuthenticated {
		s.mutex.Unlock()
		return errors.New(errors.KindAuth, "account.set_user", "no active session")
	}
	s.session.User = user
	session := s.session
	s.mutex.Unlock()

	return s.persist(ctx, session)
}

// Session returns a copy of the current state.
func (s *Store) Session() Session {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.session
}

// Token returns the bearer credential, empty when anonymous.
func (s *Store) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.session.Token
}

// ActorName names the current user for activity records.
func (s *Store) ActorName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.session.ActorName()
}

func (s *Store) persist(ctx context.Context, session Session) error {
	raw, err := sonic.Marshal(session)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "account.persist", "failed to serialize session", err)
	}
	if err := s.kv.Put(ctx, StorageKey, raw); err != nil {
		return errors.Wrap(errors.KindStorage, "account.persist", "failed to write session entry", err)
	}
	return nil
}

// tokenExpired inspects the exp claim without verifying the signature.
// The server remains the authority; this only avoids restoring a
// session the next request would reject anyway.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque tokens are left to the server to judge.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func emailOf(user *User) string {
	if user == nil {
		return ""
	}
	return user.Email
}
