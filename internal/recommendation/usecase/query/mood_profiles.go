package query

import (
	"strings"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/mood"
)

// ResolveProfileQuery represents the query to resolve a mood profile
type ResolveProfileQuery struct {
	Mood     string
	Occasion string
}

// ResolveProfileHandler handles profile lookups
type ResolveProfileHandler struct {
	resolver *mood.Resolver
}

// NewResolveProfileHandler creates a new resolve profile handler
func NewResolveProfileHandler(resolver *mood.Resolver) *ResolveProfileHandler {
	return &ResolveProfileHandler{resolver: resolver}
}

// Handle executes the resolve profile query
func (h *ResolveProfileHandler) Handle(q ResolveProfileQuery) (domain.MoodProfile, error) {
	if strings.TrimSpace(q.Mood) == "" {
		return domain.MoodProfile{}, domain.ErrMoodRequired
	}
	if strings.TrimSpace(q.Occasion) == "" {
		return domain.MoodProfile{}, domain.ErrOccasionRequired
	}
	return h.resolver.Resolve(q.Mood, q.Occasion), nil
}

// ListProfilesHandler returns the configured profile table
type ListProfilesHandler struct {
	resolver *mood.Resolver
}

// NewListProfilesHandler creates a new list profiles handler
func NewListProfilesHandler(resolver *mood.Resolver) *ListProfilesHandler {
	return &ListProfilesHandler{resolver: resolver}
}

// Handle executes the list profiles query
func (h *ListProfilesHandler) Handle() []domain.MoodProfile {
	return h.resolver.Profiles()
}
