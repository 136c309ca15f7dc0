package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/whyvineet/orthoplay-go/internal/api/response"
	"github.com/whyvineet/orthoplay-go/internal/factory"
	"github.com/whyvineet/orthoplay-go/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	router http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.app.LoadTestCatalog()

	s.router = NewRouter(RouterConfig{
		Logger:             testutil.NopLogger(),
		AuthService:        s.app.AuthService,
		GameController:     s.app.GameController,
		LeaderboardService: s.app.LeaderboardService,
		CatalogService:     s.app.CatalogService,
		Clock:              s.app.MockClock,
	})
}

func (s *APISuite) request(method, path string, body any, result any) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if result != nil && rec.Code < 400 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), result))
	}
	return rec
}

// startCatGame drives POST /game/start so that "cat" is picked.
// Test catalog keys sort as: apple, cat, journey, labyrinth.
func (s *APISuite) startCatGame() response.StartGameResponse {
	s.app.MockRandom.QueueIntn(1)
	s.app.MockRandom.QueueString("abc123defg")

	var start response.StartGameResponse
	rec := s.request(http.MethodPost, "/api/v1/game/start", map[string]string{}, &start)
	s.Require().Equal(http.StatusOK, rec.Code)
	return start
}

func (s *APISuite) errorCode(rec *httptest.ResponseRecorder) string {
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	return errResp.Error.Code
}

func (s *APISuite) TestHealth() {
	var result map[string]string
	rec := s.request(http.MethodGet, "/api/v1/health", nil, &result)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("healthy", result["status"])
}

func (s *APISuite) TestStartGame() {
	start := s.startCatGame()

	s.Equal("game_abc123defg", start.SessionID)
	s.Equal("cat", start.Word)
	s.Equal("A small domesticated feline", start.Description)
	s.Len(start.Hints, 3)
	s.Len(start.LengthOptions, 3)
	s.Contains(start.LengthOptions, 3)
	s.Equal("playing", start.Mode)
}

func (s *APISuite) TestStartGameInvalidMode() {
	rec := s.request(http.MethodPost, "/api/v1/game/start", map[string]string{"mode": "spectate"}, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("INVALID_REQUEST", s.errorCode(rec))
}

func (s *APISuite) TestStartGameUnknownDifficultyValue() {
	rec := s.request(http.MethodPost, "/api/v1/game/start", map[string]string{"difficulty": "brutal"}, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestGuessLength() {
	start := s.startCatGame()

	var wrong response.GuessLengthResponse
	rec := s.request(http.MethodPost, "/api/v1/game/guess-length", map[string]any{
		"session_id": start.SessionID, "guessed_length": 5,
	}, &wrong)
	s.Equal(http.StatusOK, rec.Code)
	s.False(wrong.IsCorrect)
	s.Nil(wrong.WordLength)

	var right response.GuessLengthResponse
	rec = s.request(http.MethodPost, "/api/v1/game/guess-length", map[string]any{
		"session_id": start.SessionID, "guessed_length": 3,
	}, &right)
	s.Equal(http.StatusOK, rec.Code)
	s.True(right.IsCorrect)
	s.Require().NotNil(right.WordLength)
	s.Equal(3, *right.WordLength)
	s.Equal([]string{"_", "_", "_"}, right.Placeholders)
}

func (s *APISuite) TestGuessLengthUnknownSession() {
	rec := s.request(http.MethodPost, "/api/v1/game/guess-length", map[string]any{
		"session_id": "game_missing", "guessed_length": 3,
	}, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SESSION_NOT_FOUND", s.errorCode(rec))
}

func (s *APISuite) TestSubmitSpellingFlow() {
	start := s.startCatGame()

	var wrong response.SubmitSpellingResponse
	rec := s.request(http.MethodPost, "/api/v1/game/submit-spelling", map[string]string{
		"session_id": start.SessionID, "guess": "cot",
	}, &wrong)
	s.Equal(http.StatusOK, rec.Code)
	s.False(wrong.IsCorrect)
	s.Equal(1, wrong.Attempts)
	s.Nil(wrong.CorrectWord)
	s.Len(wrong.Feedback, 3)

	var right response.SubmitSpellingResponse
	rec = s.request(http.MethodPost, "/api/v1/game/submit-spelling", map[string]string{
		"session_id": start.SessionID, "guess": "CAT",
	}, &right)
	s.Equal(http.StatusOK, rec.Code)
	s.True(right.IsCorrect)
	s.Equal(2, right.Attempts)
	s.Require().NotNil(right.CorrectWord)
	s.Equal("cat", *right.CorrectWord)
	s.Require().NotNil(right.ExampleSentence)
	s.NotEmpty(*right.ExampleSentence)
}

func (s *APISuite) TestUseHintAndGameStats() {
	start := s.startCatGame()

	var hint response.UseHintResponse
	rec := s.request(http.MethodPost, "/api/v1/game/use-hint", map[string]string{
		"session_id": start.SessionID,
	}, &hint)
	s.Equal(http.StatusOK, rec.Code)
	s.True(hint.Success)
	s.Equal(1, hint.HintsUsed)

	var stats response.GameStatsResponse
	rec = s.request(http.MethodGet, "/api/v1/game/stats/"+start.SessionID, nil, &stats)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, stats.Attempts)
	s.False(stats.Completed)
	s.Nil(stats.Word, "word is hidden until completion")
}

func (s *APISuite) TestRevealAnswer() {
	start := s.startCatGame()

	var reveal response.RevealAnswerResponse
	rec := s.request(http.MethodPost, "/api/v1/game/reveal-answer", map[string]string{
		"session_id": start.SessionID,
	}, &reveal)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("cat", reveal.CorrectWord)
	s.NotEmpty(reveal.ExampleSentence)

	// Now the stats endpoint discloses the word
	var stats response.GameStatsResponse
	rec = s.request(http.MethodGet, "/api/v1/game/stats/"+start.SessionID, nil, &stats)
	s.Equal(http.StatusOK, rec.Code)
	s.True(stats.Completed)
	s.Require().NotNil(stats.Word)
	s.Equal("cat", *stats.Word)
}

func (s *APISuite) TestFullGameAndLeaderboardFlow() {
	start := s.startCatGame()

	s.app.MockClock.Advance(30 * time.Second)
	rec := s.request(http.MethodPost, "/api/v1/game/submit-spelling", map[string]string{
		"session_id": start.SessionID, "guess": "cat",
	}, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var submit response.SubmitScoreResponse
	rec = s.request(http.MethodPost, "/api/v1/leaderboard/submit", map[string]any{
		"username":        "Alice",
		"session_id":      start.SessionID,
		"completion_time": 30.0,
	}, &submit)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.True(submit.Success)
	// 1000 base + (60-30)*10 time bonus, one attempt, no hints
	s.Equal(1300, submit.Score)
	s.Equal(1, submit.Rank)

	var board response.LeaderboardResponse
	rec = s.request(http.MethodGet, "/api/v1/leaderboard?username=alice", nil, &board)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, board.TotalEntries)
	s.Require().Len(board.Entries, 1)
	s.Equal("alice", board.Entries[0].Username)
	s.Equal("cat", board.Entries[0].Word)
	s.Equal(1300, board.Entries[0].Score)
	s.InDelta(30.0, board.Entries[0].CompletionTime, 0.001)
	s.Require().NotNil(board.UserRank)
	s.Equal(1, *board.UserRank)
	s.Require().NotNil(board.UserBestScore)
	s.Equal(1300, *board.UserBestScore)

	var userStats response.UserStatsResponse
	rec = s.request(http.MethodGet, "/api/v1/leaderboard/user/alice", nil, &userStats)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("alice", userStats.Username)
	s.Equal(1, userStats.TotalGames)
	s.Equal(1300, userStats.BestScore)
}

func (s *APISuite) TestSubmitScoreIncompleteGame() {
	start := s.startCatGame()

	rec := s.request(http.MethodPost, "/api/v1/leaderboard/submit", map[string]any{
		"username":        "alice",
		"session_id":      start.SessionID,
		"completion_time": 30.0,
	}, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("GAME_NOT_COMPLETED", s.errorCode(rec))
}

func (s *APISuite) TestSubmitScoreDemoSession() {
	s.app.MockRandom.QueueIntn(1)
	s.app.MockRandom.QueueString("demo000001")

	var start response.StartGameResponse
	rec := s.request(http.MethodPost, "/api/v1/game/start", map[string]string{"mode": "demo"}, &start)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("demo", start.Mode)

	// Demo sessions are never persisted, so the submit lookup misses
	rec = s.request(http.MethodPost, "/api/v1/leaderboard/submit", map[string]any{
		"username":        "alice",
		"session_id":      start.SessionID,
		"completion_time": 30.0,
	}, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SESSION_NOT_FOUND", s.errorCode(rec))
}

func (s *APISuite) TestSubmitScoreInvalidUsername() {
	start := s.startCatGame()
	rec := s.request(http.MethodPost, "/api/v1/game/submit-spelling", map[string]string{
		"session_id": start.SessionID, "guess": "cat",
	}, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPost, "/api/v1/leaderboard/submit", map[string]any{
		"username":        "x",
		"session_id":      start.SessionID,
		"completion_time": 30.0,
	}, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("INVALID_USERNAME", s.errorCode(rec))
}

func (s *APISuite) TestLeaderboardBadTimeFilter() {
	rec := s.request(http.MethodGet, "/api/v1/leaderboard?time_filter=yearly", nil, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestUserStatsInvalidUsername() {
	rec := s.request(http.MethodGet, "/api/v1/leaderboard/user/x", nil, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("INVALID_USERNAME", s.errorCode(rec))
}

func (s *APISuite) TestAppStats() {
	var stats response.AppStatsResponse
	rec := s.request(http.MethodGet, "/api/v1/app/stats", nil, &stats)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(4, stats.WordsAvailable)
	s.Equal(0, stats.ActiveLearners)
	s.Equal(0, stats.TotalGamesPlayed)
	s.Equal(95, stats.CommunityLove) // default with an empty leaderboard
	s.Equal(100, stats.OpenSource)
}

func (s *APISuite) TestGuestAuthFlow() {
	var auth response.SessionResponse
	rec := s.request(http.MethodPost, "/api/v1/players/guest", map[string]string{
		"display_name": "Alice",
	}, &auth)
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.NotEmpty(auth.Token)
	s.True(auth.Player.IsGuest)

	// Authenticated request to /players/me
	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/me", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	var me response.PlayerResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &me))
	s.Equal("Alice", me.DisplayName)
}

func (s *APISuite) TestMeRequiresAuth() {
	rec := s.request(http.MethodGet, "/api/v1/players/me", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APISuite) TestRegisteredUserSubmitsWithoutUsername() {
	var auth response.SessionResponse
	rec := s.request(http.MethodPost, "/api/v1/players/register", map[string]string{
		"username": "alice", "password": "hunter22",
	}, &auth)
	s.Require().Equal(http.StatusCreated, rec.Code)

	start := s.startCatGame()
	rec = s.request(http.MethodPost, "/api/v1/game/submit-spelling", map[string]string{
		"session_id": start.SessionID, "guess": "cat",
	}, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	// Submit with the bearer token and no username in the body
	raw, err := json.Marshal(map[string]any{
		"session_id":      start.SessionID,
		"completion_time": 12.5,
	})
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaderboard/submit", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var board response.LeaderboardResponse
	rec = s.request(http.MethodGet, "/api/v1/leaderboard", nil, &board)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Len(board.Entries, 1)
	s.Equal("alice", board.Entries[0].Username)
}
