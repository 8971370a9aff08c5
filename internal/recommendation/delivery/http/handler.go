package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/usecase/query"
	"github.com/tair/shopping-advisor/pkg/logger"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RecommendationHandler handles HTTP requests for the shopping advisor
type RecommendationHandler struct {
	chatHandler     *query.ChatHandler
	moodHandler     *query.MoodSuggestionsHandler
	classifyHandler *query.ClassifyIntentHandler
	resolveHandler  *query.ResolveProfileHandler
	profilesHandler *query.ListProfilesHandler
	statsHandler    *query.CatalogStatsHandler

	metrics *Metrics
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	chatHandler *query.ChatHandler,
	moodHandler *query.MoodSuggestionsHandler,
	classifyHandler *query.ClassifyIntentHandler,
	resolveHandler *query.ResolveProfileHandler,
	profilesHandler *query.ListProfilesHandler,
	statsHandler *query.CatalogStatsHandler,
	metrics *Metrics,
) *RecommendationHandler {
	return &RecommendationHandler{
		chatHandler:     chatHandler,
		moodHandler:     moodHandler,
		classifyHandler: classifyHandler,
		resolveHandler:  resolveHandler,
		profilesHandler: profilesHandler,
		statsHandler:    statsHandler,
		metrics:         metrics,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *RecommendationHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.metrics.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.metrics.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.metrics.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chat", h.metricsMiddleware("/api/chat", h.Chat)).Methods("POST")
	router.HandleFunc("/api/mood-suggestions", h.metricsMiddleware("/api/mood-suggestions", h.MoodSuggestions)).Methods("POST")
	router.HandleFunc("/api/intent/classify", h.metricsMiddleware("/api/intent/classify", h.ClassifyIntent)).Methods("POST")
	router.HandleFunc("/api/mood-profiles/resolve", h.metricsMiddleware("/api/mood-profiles/resolve", h.ResolveProfile)).Methods("GET")
	router.HandleFunc("/api/mood-profiles", h.metricsMiddleware("/api/mood-profiles", h.ListProfiles)).Methods("GET")
	router.HandleFunc("/api/catalog/stats", h.metricsMiddleware("/api/catalog/stats", h.GetCatalogStats)).Methods("GET")
}

type chatRequest struct {
	Message      string   `json:"message"`
	CandidateIDs []string `json:"candidateIds,omitempty"`
}

type chatResponse struct {
	Reply      string   `json:"reply"`
	ProductIDs []string `json:"productIds"`
}

// Chat handles POST /api/chat
func (h *RecommendationHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	reply, err := h.chatHandler.Handle(r.Context(), query.ChatQuery{
		Message:      req.Message,
		CandidateIDs: req.CandidateIDs,
		UserID:       UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondQueryError(w, r, err, "Failed to answer message")
		return
	}

	h.metrics.intents.WithLabelValues(string(reply.Intent)).Inc()
	h.metrics.suggestions.WithLabelValues(domain.FlowChat).Observe(float64(len(reply.ProductIDs)))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: chatResponse{
			Reply:      reply.Reply,
			ProductIDs: reply.ProductIDs,
		},
	})
}

type moodRequest struct {
	Mood         string   `json:"mood"`
	Occasion     string   `json:"occasion"`
	Budget       float64  `json:"budget"`
	CandidateIDs []string `json:"candidateIds,omitempty"`
}

type moodResponse struct {
	Profile     domain.MoodProfile  `json:"profile"`
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// MoodSuggestions handles POST /api/mood-suggestions
func (h *RecommendationHandler) MoodSuggestions(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.moodHandler.Handle(r.Context(), query.MoodSuggestionsQuery{
		Mood:         req.Mood,
		Occasion:     req.Occasion,
		Budget:       req.Budget,
		CandidateIDs: req.CandidateIDs,
		UserID:       UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.respondQueryError(w, r, err, "Failed to build suggestions")
		return
	}

	if result.Fallback {
		h.metrics.moodFallbacks.Inc()
	}
	h.metrics.suggestions.WithLabelValues(domain.FlowMood).Observe(float64(len(result.Suggestions)))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: moodResponse{
			Profile:     result.Profile,
			Suggestions: result.Suggestions,
		},
	})
}

// ClassifyIntent handles POST /api/intent/classify
func (h *RecommendationHandler) ClassifyIntent(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.classifyHandler.Handle(query.ClassifyIntentQuery{Message: req.Message}),
	})
}

// ResolveProfile handles GET /api/mood-profiles/resolve
func (h *RecommendationHandler) ResolveProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.resolveHandler.Handle(query.ResolveProfileQuery{
		Mood:     r.URL.Query().Get("mood"),
		Occasion: r.URL.Query().Get("occasion"),
	})
	if err != nil {
		h.respondQueryError(w, r, err, "Failed to resolve profile")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    profile,
	})
}

// ListProfiles handles GET /api/mood-profiles
func (h *RecommendationHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.profilesHandler.Handle(),
	})
}

// GetCatalogStats handles GET /api/catalog/stats
func (h *RecommendationHandler) GetCatalogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context(), query.CatalogStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get catalog stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

func (h *RecommendationHandler) RegisterHealthCheck(router *mux.Router, checker HealthChecker) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.Ping(r.Context()); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   "Database unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Shopping advisor is healthy",
		})
	}).Methods("GET")
}

// respondQueryError maps validation errors to 400 and everything else to 500
func (h *RecommendationHandler) respondQueryError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if isValidationError(err) {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	logger.Error(r.Context()).Err(err).Msg(msg)
	respondJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Error:   msg,
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrMessageTooShort) ||
		errors.Is(err, domain.ErrMoodRequired) ||
		errors.Is(err, domain.ErrOccasionRequired) ||
		errors.Is(err, domain.ErrInvalidBudget)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
