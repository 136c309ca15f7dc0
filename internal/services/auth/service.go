package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/clock"
	"github.com/whyvineet/orthoplay-go/internal/model"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
)

// Session represents an authenticated session
type Session struct {
	Token     string
	PlayerID  model.PlayerID
	Player    model.Player
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service is the authentication collaborator: it issues principals for
// requests. The game core never validates credentials itself. Accounts
// and sessions live in memory for the process lifetime.
type Service struct {
	clock clock.Clock

	mu       sync.RWMutex
	players  map[model.PlayerID]*model.Player
	accounts map[string]*account // keyed by normalized username
	sessions map[string]*Session

	sessionDuration time.Duration
}

type account struct {
	playerID     model.PlayerID
	passwordHash string
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new AuthService
func New(clk clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		clock:           clk,
		players:         make(map[model.PlayerID]*model.Player),
		accounts:        make(map[string]*account),
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// CreateGuest creates an anonymous player and session
func (s *Service) CreateGuest(displayName string) (*Session, error) {
	now := s.clock.Now()
	player := &model.Player{
		ID:          model.PlayerID(generateID("p_")),
		DisplayName: displayName,
		IsGuest:     true,
		CreatedAt:   now,
	}

	s.mu.Lock()
	s.players[player.ID] = player
	s.mu.Unlock()

	return s.createSession(player), nil
}

// Register creates a registered player account and session. The username
// must satisfy the same rules as leaderboard usernames.
func (s *Service) Register(username, password, displayName string) (*Session, error) {
	username = model.NormalizeUsername(username)
	if err := model.ValidateUsername(username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:          model.PlayerID(generateID("p_")),
		Username:    username,
		DisplayName: displayName,
		CreatedAt:   now,
	}

	s.mu.Lock()
	if _, exists := s.accounts[username]; exists {
		s.mu.Unlock()
		return nil, ErrUsernameExists
	}
	s.players[player.ID] = player
	s.accounts[username] = &account{
		playerID:     player.ID,
		passwordHash: string(hash),
	}
	s.mu.Unlock()

	return s.createSession(player), nil
}

// Login authenticates a registered player and creates a session
func (s *Service) Login(username, password string) (*Session, error) {
	username = model.NormalizeUsername(username)

	s.mu.RLock()
	acct, ok := s.accounts[username]
	var player *model.Player
	if ok {
		player = s.players[acct.playerID]
	}
	s.mu.RUnlock()

	if !ok || player == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(player), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

func (s *Service) createSession(player *model.Player) *Session {
	now := s.clock.Now()
	session := &Session{
		Token:     generateID("sess_"),
		PlayerID:  player.ID,
		Player:    *player,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

func generateID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
