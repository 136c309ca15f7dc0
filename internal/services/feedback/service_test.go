package feedback

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/whyvineet/orthoplay-go/internal/model"
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

func (s *ServiceSuite) marks(values ...model.FeedbackMark) []model.FeedbackMark {
	return values
}

func (s *ServiceSuite) TestExactMatchAllHits() {
	result := s.service.Feedback("cat", "cat")
	s.Equal(s.marks(model.MarkHit, model.MarkHit, model.MarkHit), result)
}

func (s *ServiceSuite) TestNoLettersInCommon() {
	result := s.service.Feedback("dog", "cat")
	s.Equal(s.marks(model.MarkMiss, model.MarkMiss, model.MarkMiss), result)
}

func (s *ServiceSuite) TestWrongPositionLetters() {
	// All letters of the target, rotated
	result := s.service.Feedback("tca", "cat")
	s.Equal(s.marks(model.MarkPresent, model.MarkPresent, model.MarkPresent), result)
}

func (s *ServiceSuite) TestMixedFeedback() {
	result := s.service.Feedback("cta", "cat")
	s.Equal(s.marks(model.MarkHit, model.MarkPresent, model.MarkPresent), result)
}

func (s *ServiceSuite) TestGuessIsCaseFoldedAndTrimmed() {
	result := s.service.Feedback("  CaT ", "cat")
	s.Equal(s.marks(model.MarkHit, model.MarkHit, model.MarkHit), result)
}

func (s *ServiceSuite) TestLengthMismatchYieldsAllMissOfTargetLength() {
	result := s.service.Feedback("cats", "cat")
	s.Equal(s.marks(model.MarkMiss, model.MarkMiss, model.MarkMiss), result)

	result = s.service.Feedback("ca", "cat")
	s.Equal(s.marks(model.MarkMiss, model.MarkMiss, model.MarkMiss), result)
}

func (s *ServiceSuite) TestEmptyGuess() {
	result := s.service.Feedback("", "cat")
	s.Equal(s.marks(model.MarkMiss, model.MarkMiss, model.MarkMiss), result)
}

func (s *ServiceSuite) TestDuplicateLettersNotCountedTwice() {
	// Target has two a's; the guess's four a's can only earn two marks
	result := s.service.Feedback("aaaa", "aabc")
	s.Equal(s.marks(model.MarkHit, model.MarkHit, model.MarkMiss, model.MarkMiss), result)
}

func (s *ServiceSuite) TestDuplicateLetterConsumedByHitFirst() {
	// The second 'l' of "llama" is a hit; the first can still be present
	// only if an unmatched 'l' remains in the pool
	result := s.service.Feedback("lxlxx", "xllxx")
	s.Equal(s.marks(
		model.MarkPresent, // l, pool has one unmatched l
		model.MarkPresent, // x, pool has unmatched x at position 0
		model.MarkHit,     // l
		model.MarkHit,     // x
		model.MarkHit,     // x
	), result)
}

func (s *ServiceSuite) TestPresentPoolExhausts() {
	// Target "abca" has two a's; guess "aaab" places one hit at 0, then
	// only one more a can be present
	result := s.service.Feedback("aaab", "abca")
	s.Equal(s.marks(model.MarkHit, model.MarkPresent, model.MarkMiss, model.MarkPresent), result)
}

func (s *ServiceSuite) TestIsCorrect() {
	s.True(s.service.IsCorrect("cat", "cat"))
	s.True(s.service.IsCorrect(" CAT ", "cat"))
	s.False(s.service.IsCorrect("cats", "cat"))
	s.False(s.service.IsCorrect("", "cat"))
}
