package query

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/filter"
	"github.com/tair/shopping-advisor/internal/recommendation/mood"
	"github.com/tair/shopping-advisor/internal/recommendation/scoring"
	"github.com/tair/shopping-advisor/internal/recommendation/selector"
	"github.com/tair/shopping-advisor/pkg/logger"
)

// MoodSuggestionsQuery asks for products matching a mood and occasion.
type MoodSuggestionsQuery struct {
	Mood         string
	Occasion     string
	Budget       float64
	CandidateIDs []string
	UserID       uint
}

// Validate checks the required fields.
func (q MoodSuggestionsQuery) Validate() error {
	if strings.TrimSpace(q.Mood) == "" {
		return domain.ErrMoodRequired
	}
	if strings.TrimSpace(q.Occasion) == "" {
		return domain.ErrOccasionRequired
	}
	if !(q.Budget > 0) {
		return domain.ErrInvalidBudget
	}
	return nil
}

// MoodSuggestionsHandler handles mood-based suggestion queries.
type MoodSuggestionsHandler struct {
	repo      domain.CatalogRepository
	resolver  *mood.Resolver
	publisher domain.EventPublisher
	settings  Settings
}

// NewMoodSuggestionsHandler creates a new mood suggestions handler. publisher may be nil.
func NewMoodSuggestionsHandler(repo domain.CatalogRepository, resolver *mood.Resolver, publisher domain.EventPublisher, settings Settings) *MoodSuggestionsHandler {
	return &MoodSuggestionsHandler{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		settings:  settings,
	}
}

// Handle executes the mood suggestions query
func (h *MoodSuggestionsHandler) Handle(ctx context.Context, q MoodSuggestionsQuery) (*domain.MoodSuggestions, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "usecase.MoodSuggestions")
	defer span.End()

	profile := h.resolver.Resolve(q.Mood, q.Occasion)
	span.SetAttributes(
		attribute.String("mood", profile.Mood),
		attribute.String("occasion", profile.Occasion),
		attribute.String("budget.strategy", string(profile.BudgetStrategy)),
		attribute.Float64("budget", q.Budget),
	)

	eligible := filter.InStockWithin(fetchCatalog(ctx, h.repo, q.Budget), q.Budget)
	eligible = restrictToCandidates(eligible, q.CandidateIDs)

	strategy := scoring.NewMood(profile, q.Budget)
	restricted := strategy.Restrict(eligible)

	var ranked []domain.ScoredCandidate
	fallback := len(restricted) == 0
	if fallback {
		ranked = scoring.Rank(scoring.NewFallback(q.Budget, strings.TrimSpace(q.Occasion)), eligible)
	} else {
		ranked = scoring.Rank(strategy, restricted)
	}
	selected := selector.SelectTop(ranked, h.settings.MoodLimit)

	logger.Debug(ctx).
		Str("mood", profile.Mood).
		Str("occasion", profile.Occasion).
		Int("eligible", len(eligible)).
		Int("restricted", len(restricted)).
		Bool("fallback", fallback).
		Int("selected", len(selected)).
		Msg("Mood suggestions ranked")

	result := &domain.MoodSuggestions{
		Profile:     profile,
		Suggestions: make([]domain.Suggestion, 0, len(selected)),
		Fallback:    fallback,
	}
	ids := make([]string, 0, len(selected))
	for _, c := range selected {
		result.Suggestions = append(result.Suggestions, domain.Suggestion{
			ProductID: c.Product.ID,
			Reason:    c.TopReason(),
			Product:   c.Product.Summarize(),
		})
		ids = append(ids, c.Product.ID)
	}

	publish(ctx, h.publisher, domain.RecommendationServed{
		Flow:       domain.FlowMood,
		Mood:       profile.Mood,
		Occasion:   profile.Occasion,
		ProductIDs: ids,
		UserID:     q.UserID,
	})

	return result, nil
}
