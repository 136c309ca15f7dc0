package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/mocks"
	"github.com/whyvineet/orthoplay-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.clock, DefaultConfig())
}

func (s *ServiceSuite) TestCreateGuest() {
	session, err := s.service.CreateGuest("Alice")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("Alice", session.Player.DisplayName)
	s.True(session.Player.IsGuest)
	s.Empty(session.Player.Username)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestRegisterAndLogin() {
	registered, err := s.service.Register("Alice_99", "hunter22", "Alice")
	s.Require().NoError(err)
	s.Equal("alice_99", registered.Player.Username)
	s.False(registered.Player.IsGuest)

	login, err := s.service.Login("alice_99", "hunter22")
	s.Require().NoError(err)
	s.Equal(registered.PlayerID, login.PlayerID)
	s.NotEqual(registered.Token, login.Token)
}

func (s *ServiceSuite) TestRegisterRejectsInvalidUsername() {
	_, err := s.service.Register("x", "password", "X")
	s.ErrorIs(err, model.ErrInvalidUsername)
}

func (s *ServiceSuite) TestRegisterRejectsDuplicateUsername() {
	_, err := s.service.Register("alice", "password", "Alice")
	s.Require().NoError(err)

	_, err = s.service.Register("ALICE", "other", "Imposter")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Register("alice", "password", "Alice")
	s.Require().NoError(err)

	_, err = s.service.Login("alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownUser() {
	_, err := s.service.Login("nobody", "password")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateSession() {
	created, err := s.service.CreateGuest("Alice")
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(created.Token)
	s.Require().NoError(err)
	s.Equal(created.PlayerID, validated.PlayerID)
}

func (s *ServiceSuite) TestValidateSessionUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionExpired() {
	created, err := s.service.CreateGuest("Alice")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(created.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	created, err := s.service.CreateGuest("Alice")
	s.Require().NoError(err)

	s.service.InvalidateSession(created.Token)

	_, err = s.service.ValidateSession(created.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	expired, err := s.service.CreateGuest("Old")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	fresh, err := s.service.CreateGuest("New")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(expired.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
