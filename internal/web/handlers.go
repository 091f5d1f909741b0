package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/moodmate/moodmate-backend/internal/empathy"
	"github.com/moodmate/moodmate-backend/internal/history"
	"github.com/moodmate/moodmate-backend/internal/mood"
)

// recentWindow is how many check-ins feed the history baseline.
const recentWindow = 14

// defaultListLimit bounds GET /api/checkins.
const defaultListLimit = 30

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	engine  *empathy.Service
	history *history.Store // nil when no database is configured
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance. The history store may be
// nil; check-in endpoints then report the feature as unavailable and no
// baseline defaulting happens.
func NewHandlers(engine *empathy.Service, store *history.Store, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		engine:  engine,
		history: store,
		logger:  logger,
	}
}

// Health reports liveness (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// empathyRequest is the inbound payload: the raw mood input plus an
// optional user ID that unlocks history-based score defaulting.
type empathyRequest struct {
	mood.Input
	UserID string `json:"userId,omitempty"`
}

// Empathy resolves a mood estimate and returns recommendations
// (POST /api/empathy). Always answers 200 for well-formed input; the
// engine degrades internally rather than failing.
func (h *Handlers) Empathy(w http.ResponseWriter, r *http.Request) {
	var req empathyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	h.applyHistoryBaseline(r, &req)

	resp := h.engine.Generate(r.Context(), req.Input)
	writeJSON(w, http.StatusOK, resp)
}

// applyHistoryBaseline fills the request's missing score and energy
// from the user's dominant recent mood state. Best-effort: any store
// failure leaves the request untouched.
func (h *Handlers) applyHistoryBaseline(r *http.Request, req *empathyRequest) {
	if h.history == nil || req.UserID == "" {
		return
	}
	if req.MoodScore != nil && req.EnergyLevel != nil {
		return
	}

	recent, err := h.history.Recent(r.Context(), req.UserID, recentWindow)
	if err != nil {
		h.logger.Warn("history baseline unavailable", "error", err)
		return
	}

	fillFromHistory(req, recent)
}

// fillFromHistory applies recent check-ins to the request: the raw
// score series feeds the history input channel, and the dominant-state
// center defaults whichever of score and energy the request left
// unset.
func fillFromHistory(req *empathyRequest, recent []history.CheckIn) {
	req.RecentMoods = history.RecentScores(recent)

	baseline, ok := history.DominantState(recent)
	if !ok {
		return
	}
	if req.MoodScore == nil {
		req.MoodScore = &baseline.Score
	}
	if req.EnergyLevel == nil {
		req.EnergyLevel = &baseline.Energy
	}
}

// checkInRequest is the inbound payload for recording a check-in.
type checkInRequest struct {
	UserID string  `json:"userId"`
	Mood   string  `json:"mood"`
	Score  float64 `json:"score"`
	Energy float64 `json:"energy"`
	Note   string  `json:"note,omitempty"`
}

// CreateCheckIn records a mood check-in (POST /api/checkins).
func (h *Handlers) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusServiceUnavailable, "check-in history is not configured")
		return
	}

	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	checkIn := history.CheckIn{
		UserID: req.UserID,
		Mood:   string(mood.ParseCategory(req.Mood)),
		Score:  req.Score,
		Energy: req.Energy,
		Note:   req.Note,
	}
	if err := h.history.Insert(r.Context(), &checkIn); err != nil {
		h.logger.Error("inserting check-in failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save check-in")
		return
	}

	writeJSON(w, http.StatusCreated, checkIn)
}

// ListCheckIns returns a user's recent check-ins (GET /api/checkins).
func (h *Handlers) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusServiceUnavailable, "check-in history is not configured")
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	checkIns, err := h.history.Recent(r.Context(), userID, limit)
	if err != nil && !errors.Is(err, history.ErrNotFound) {
		h.logger.Error("listing check-ins failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load check-ins")
		return
	}
	if checkIns == nil {
		checkIns = []history.CheckIn{}
	}

	writeJSON(w, http.StatusOK, checkIns)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
