package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) TestPerfectGame() {
	// One attempt, no hints, instant completion of a 3-letter word:
	// 1000 base + 0 length + 600 time bonus
	s.Equal(1600, s.service.Score(1, 0, 0, 3))
}

func (s *ServiceSuite) TestNoTimeBonusPastCutoff() {
	s.Equal(1000, s.service.Score(1, 0, 70, 3))
}

func (s *ServiceSuite) TestTimeBonusBoundary() {
	// Exactly at the cutoff earns a zero bonus, just past it the same
	s.Equal(1000, s.service.Score(1, 0, 60, 3))
	s.Equal(1000, s.service.Score(1, 0, 60.1, 3))
}

func (s *ServiceSuite) TestFractionalTimeBonusFloors() {
	// 59.75s remaining bonus = floor(0.25 * 10) = 2
	s.Equal(1002, s.service.Score(1, 0, 59.75, 3))
}

func (s *ServiceSuite) TestSlowManyAttemptsWithHints() {
	// 1000 + 0 length + 0 time - 450 attempts - 300 hints = 250
	s.Equal(250, s.service.Score(10, 3, 120, 3))
}

func (s *ServiceSuite) TestFirstAttemptIsFree() {
	base := s.service.Score(1, 0, 100, 3)
	s.Equal(base-50, s.service.Score(2, 0, 100, 3))
	s.Equal(base-100, s.service.Score(3, 0, 100, 3))
}

func (s *ServiceSuite) TestLengthBonus() {
	s.Equal(1000, s.service.Score(1, 0, 100, 3))
	s.Equal(1350, s.service.Score(1, 0, 100, 10))
}

func (s *ServiceSuite) TestHintPenalty() {
	s.Equal(900, s.service.Score(1, 1, 100, 3))
	s.Equal(800, s.service.Score(1, 2, 100, 3))
}

func (s *ServiceSuite) TestMinimumScoreFloor() {
	s.Equal(100, s.service.Score(50, 10, 300, 3))
}

func (s *ServiceSuite) TestNoUpperCap() {
	// A long word finished instantly beats the perfect 3-letter game
	s.Equal(1950, s.service.Score(1, 0, 0, 10))
}

func (s *ServiceSuite) TestDeterministic() {
	a := s.service.Score(4, 2, 45.5, 7)
	b := s.service.Score(4, 2, 45.5, 7)
	s.Equal(a, b)
}
