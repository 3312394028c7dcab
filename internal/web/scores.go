package web

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type topScoresResponse struct {
	Difficulty config.Difficulty    `json:"difficulty"`
	Scores     []storage.ScoreEntry `json:"scores"`
}

type bestScoreResponse struct {
	Difficulty config.Difficulty `json:"difficulty"`
	Score      int               `json:"score"`
}

func difficultyParam(w http.ResponseWriter, r *http.Request) (config.Difficulty, bool) {
	d, err := config.ParseDifficulty(chi.URLParam(r, "difficulty"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return d, true
}

func handleTopScores(logger *log.Logger, scores ScoreReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := difficultyParam(w, r)
		if !ok {
			return
		}

		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = min(n, maxLimit)
		}

		entries, err := scores.TopScores(d, limit)
		if err != nil {
			logger.Error("cannot load scores", "difficulty", d, "error", err)
			writeError(w, http.StatusInternalServerError, "cannot load scores")
			return
		}
		if entries == nil {
			entries = []storage.ScoreEntry{}
		}

		writeJSON(w, http.StatusOK, topScoresResponse{Difficulty: d, Scores: entries})
	}
}

func handleBestScore(logger *log.Logger, scores ScoreReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := difficultyParam(w, r)
		if !ok {
			return
		}

		best, err := scores.HighScore(d)
		if err != nil {
			logger.Error("cannot load best score", "difficulty", d, "error", err)
			writeError(w, http.StatusInternalServerError, "cannot load best score")
			return
		}

		writeJSON(w, http.StatusOK, bestScoreResponse{Difficulty: d, Score: best})
	}
}
