package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Chat godoc
// @Summary Answer a shopping message
// @Description Classify a free-text message, rank matching catalog products and reply in natural language
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body object{message=string,candidateIds=[]string} true "Chat message"
// @Success 200 {object} object{success=bool,data=object{reply=string,productIds=[]string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/chat [post]
func (h *RecommendationHandler) ChatDoc() {}

// MoodSuggestions godoc
// @Summary Suggest products for a mood and occasion
// @Description Resolve a mood profile and return up to three products within budget
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body object{mood=string,occasion=string,budget=number,candidateIds=[]string} true "Mood request"
// @Success 200 {object} object{success=bool,data=object{profile=object,suggestions=[]object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/mood-suggestions [post]
func (h *RecommendationHandler) MoodSuggestionsDoc() {}

// ClassifyIntent godoc
// @Summary Classify a message
// @Description Return the intent, confidence and extracted shopping context of a message
// @Tags Intent
// @Accept json
// @Produce json
// @Param request body object{message=string} true "Message"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/intent/classify [post]
func (h *RecommendationHandler) ClassifyIntentDoc() {}

// ResolveProfile godoc
// @Summary Resolve a mood profile
// @Tags Mood
// @Produce json
// @Param mood query string true "Mood"
// @Param occasion query string true "Occasion"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/mood-profiles/resolve [get]
func (h *RecommendationHandler) ResolveProfileDoc() {}

// ListProfiles godoc
// @Summary List mood profiles
// @Tags Mood
// @Produce json
// @Success 200 {object} object{success=bool,data=[]object}
// @Router /api/mood-profiles [get]
func (h *RecommendationHandler) ListProfilesDoc() {}

// GetCatalogStats godoc
// @Summary Catalog statistics
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/catalog/stats [get]
func (h *RecommendationHandler) GetCatalogStatsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *RecommendationHandler) HealthCheckDoc() {}
