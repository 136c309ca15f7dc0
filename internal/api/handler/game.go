package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/whyvineet/orthoplay-go/internal/api/apierr"
	"github.com/whyvineet/orthoplay-go/internal/api/request"
	"github.com/whyvineet/orthoplay-go/internal/api/response"
	"github.com/whyvineet/orthoplay-go/internal/model"
)

// StartGame handles POST /game/start
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	mode := model.GameMode(req.Mode)
	switch mode {
	case "", model.ModePlaying, model.ModeDemo:
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("Mode must be 'playing' or 'demo'"))
		return
	}

	difficulty := model.Difficulty(strings.ToLower(req.Difficulty))
	if difficulty != "" && !difficulty.IsValid() {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Difficulty must be 'easy', 'medium' or 'hard'"))
		return
	}

	result, err := h.games.StartGame(r.Context(), mode, difficulty)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StartGameResponse{
		SessionID:     string(result.Session.ID),
		Word:          result.Session.Word,
		Description:   result.Record.Description,
		Hints:         result.Record.Hints,
		LengthOptions: result.LengthOptions,
		Mode:          string(result.Session.Mode),
	})
}

// GuessLength handles POST /game/guess-length
func (h *Handler) GuessLength(w http.ResponseWriter, r *http.Request) {
	var req request.GuessLengthRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	correct, wordLength, err := h.games.GuessLength(r.Context(), model.SessionID(req.SessionID), req.GuessedLength)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if !correct {
		response.JSON(w, http.StatusOK, response.GuessLengthResponse{
			IsCorrect: false,
			Message:   fmt.Sprintf("Try again! The word is not %d letters long.", req.GuessedLength),
		})
		return
	}

	placeholders := make([]string, wordLength)
	for i := range placeholders {
		placeholders[i] = "_"
	}
	response.JSON(w, http.StatusOK, response.GuessLengthResponse{
		IsCorrect:    true,
		WordLength:   &wordLength,
		Placeholders: placeholders,
		Message:      "Correct! Now spell the word.",
	})
}

// SubmitSpelling handles POST /game/submit-spelling
func (h *Handler) SubmitSpelling(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitSpellingRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	result, err := h.games.SubmitSpelling(r.Context(), model.SessionID(req.SessionID), req.Guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.SubmitSpellingResponse{
		Feedback:   result.Feedback,
		IsCorrect:  result.Correct,
		WordLength: result.WordLength,
		Attempts:   result.Attempts,
		Message:    fmt.Sprintf("Keep trying! Attempt #%d", result.Attempts),
	}
	if result.Correct {
		word := result.Record.Word
		sentence := result.Record.ExampleSentence
		resp.CorrectWord = &word
		resp.ExampleSentence = &sentence
		resp.Message = fmt.Sprintf("Excellent! You got it right in %d attempts!", result.Attempts)
	}
	response.JSON(w, http.StatusOK, resp)
}

// UseHint handles POST /game/use-hint
func (h *Handler) UseHint(w http.ResponseWriter, r *http.Request) {
	var req request.UseHintRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if req.SessionID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("session_id is required"))
		return
	}

	hintsUsed, err := h.games.UseHint(r.Context(), model.SessionID(req.SessionID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UseHintResponse{
		Success:   true,
		HintsUsed: hintsUsed,
	})
}

// RevealAnswer handles POST /game/reveal-answer
func (h *Handler) RevealAnswer(w http.ResponseWriter, r *http.Request) {
	var req request.RevealAnswerRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	record, err := h.games.Reveal(r.Context(), model.SessionID(req.SessionID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RevealAnswerResponse{
		CorrectWord:     record.Word,
		ExampleSentence: record.ExampleSentence,
		Message:         fmt.Sprintf("The correct word was '%s'. Better luck next time!", record.Word),
	})
}

// GameStats handles GET /game/stats/{session_id}
func (h *Handler) GameStats(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	session, err := h.games.GetSession(r.Context(), model.SessionID(sessionID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.GameStatsResponse{
		Attempts:  session.Attempts,
		Completed: session.Completed,
	}
	if session.Completed {
		word := session.Word
		resp.Word = &word
	}
	response.JSON(w, http.StatusOK, resp)
}
