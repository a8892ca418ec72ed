package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
)

// SessionKey is the storage key holding the serialized session.
const SessionKey = "demo_user"

// DemoIdentity is the single account Login accepts.
type DemoIdentity struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// SessionConfig configures a SessionService.
type SessionConfig struct {
	Demo      DemoIdentity
	JWTSecret string
	TokenTTL  time.Duration
	// BcryptCost for hashing the demo password; defaults to bcrypt.DefaultCost.
	BcryptCost int
	Now        func() time.Time
	NewID      func() string
}

// SessionService holds the single authenticated user. The persisted value
// is read once at construction and cached for the process lifetime.
type SessionService struct {
	storage  ports.SessionStorage
	demo     DemoIdentity
	demoHash []byte
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
	newID    func() string
	logger   zerolog.Logger

	mu      sync.RWMutex
	current *domain.Session
}

func NewSessionService(ctx context.Context, storage ports.SessionStorage, cfg SessionConfig, logger zerolog.Logger) (*SessionService, error) {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Demo.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	s := &SessionService{
		storage:  storage,
		demo:     cfg.Demo,
		demoHash: hash,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		now:      cfg.Now,
		newID:    cfg.NewID,
		logger:   logger,
	}
	if s.demo.ID == "" {
		s.demo.ID = "1"
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = 24 * time.Hour
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	s.current = s.restore(ctx)
	return s, nil
}

// restore loads the persisted session. Missing, unreadable or corrupt
// values leave the service unauthenticated.
func (s *SessionService) restore(ctx context.Context) *domain.Session {
	raw, err := s.storage.Get(ctx, SessionKey)
	if err != nil {
		if !errors.Is(err, ports.ErrStorageKeyNotFound) {
			s.logger.Warn().Err(err).Msg("session restore failed")
		}
		return nil
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.ID == "" {
		s.logger.Warn().Err(err).Msg("discarding corrupt stored session")
		return nil
	}
	s.logger.Info().Str("session_id", sess.ID).Msg("session restored")
	return &sess
}

// Current returns the cached session, if any.
func (s *SessionService) Current() (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, false
	}
	sess := *s.current
	return &sess, true
}

// Login accepts only the configured demo identity.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.demo.Email) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.demoHash, []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:        s.demo.ID,
		Email:     s.demo.Email,
		FirstName: s.demo.FirstName,
		LastName:  s.demo.LastName,
		CreatedAt: s.now(),
	}
	return s.establish(ctx, sess)
}

// Register always succeeds unless storage fails; no other users are
// modelled, so there is no uniqueness check.
func (s *SessionService) Register(ctx context.Context, email, _, firstName, lastName string) (*domain.Session, string, error) {
	sess := &domain.Session{
		ID:        s.newID(),
		Email:     strings.TrimSpace(email),
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: s.now(),
	}
	return s.establish(ctx, sess)
}

// Logout clears the persisted and cached session. Logging out without a
// session succeeds.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("logout: %w: %w", domain.ErrOperationFailed, err)
	}
	if s.current != nil {
		s.logger.Info().Str("session_id", s.current.ID).Msg("logged out")
	}
	s.current = nil
	return nil
}

// Token signs a bearer token for sess.
func (s *SessionService) Token(sess *domain.Session) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sid":   sess.ID,
		"email": sess.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionService) establish(ctx context.Context, sess *domain.Session) (*domain.Session, string, error) {
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, "", fmt.Errorf("encode session: %w", err)
	}
	token, err := s.Token(sess)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, SessionKey, raw); err != nil {
		return nil, "", fmt.Errorf("persist session: %w: %w", domain.ErrOperationFailed, err)
	}
	s.current = sess
	s.logger.Info().Str("session_id", sess.ID).Str("email", sess.Email).Msg("session established")

	out := *sess
	return &out, token, nil
}
