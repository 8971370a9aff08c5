package query

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/filter"
	"github.com/tair/shopping-advisor/internal/recommendation/intent"
	"github.com/tair/shopping-advisor/internal/recommendation/response"
	"github.com/tair/shopping-advisor/internal/recommendation/scoring"
	"github.com/tair/shopping-advisor/internal/recommendation/selector"
	"github.com/tair/shopping-advisor/pkg/logger"
)

// ChatQuery is a free-text shopping message.
type ChatQuery struct {
	Message      string
	CandidateIDs []string
	UserID       uint
}

// ChatHandler answers free-text shopping messages.
type ChatHandler struct {
	repo       domain.CatalogRepository
	classifier *intent.Classifier
	publisher  domain.EventPublisher
	settings   Settings
}

// NewChatHandler creates a new chat handler. publisher may be nil.
func NewChatHandler(repo domain.CatalogRepository, classifier *intent.Classifier, publisher domain.EventPublisher, settings Settings) *ChatHandler {
	return &ChatHandler{
		repo:       repo,
		classifier: classifier,
		publisher:  publisher,
		settings:   settings,
	}
}

// Handle executes the chat query
func (h *ChatHandler) Handle(ctx context.Context, q ChatQuery) (*domain.ChatReply, error) {
	message := strings.TrimSpace(q.Message)
	if utf8.RuneCountInString(message) < domain.MinMessageLength {
		return nil, domain.ErrMessageTooShort
	}

	ctx, span := tracer.Start(ctx, "usecase.Chat")
	defer span.End()

	cls := h.classifier.Classify(message)
	span.SetAttributes(
		attribute.String("intent", string(cls.Intent)),
		attribute.Float64("intent.confidence", cls.Confidence),
	)

	logger.Debug(ctx).
		Str("intent", string(cls.Intent)).
		Float64("confidence", cls.Confidence).
		Strs("categories", cls.Context.Categories).
		Msg("Message classified")

	if !cls.Intent.NeedsCatalog() {
		return &domain.ChatReply{
			Reply:  response.Render(cls.Intent, cls.Context, nil, message),
			Intent: cls.Intent,
		}, nil
	}

	products := fetchCatalog(ctx, h.repo, catalogCeiling(cls.Context))
	products = restrictToCandidates(products, q.CandidateIDs)

	// scope is the context the candidates actually satisfy; it drives the reply.
	scope := cls.Context
	candidates := filter.Apply(products, scope)
	if len(candidates) == 0 && len(scope.Categories) > 0 {
		scope = scope.WithoutCategories()
		candidates = filter.Apply(products, scope)
		span.AddEvent("filter.widened")
	}

	ranked := scoring.Rank(scoring.NewConversational(cls.Context, message), candidates)
	selected := selector.SelectTop(ranked, h.settings.ChatLimit)

	span.SetAttributes(
		attribute.Int("catalog.count", len(products)),
		attribute.Int("candidates.count", len(candidates)),
		attribute.Int("selected.count", len(selected)),
		attribute.Bool("filter.widened", len(scope.Categories) != len(cls.Context.Categories)),
	)

	reply := &domain.ChatReply{
		Reply:      response.Render(cls.Intent, scope, selected, message),
		ProductIDs: referencedIDs(selected, response.DisplayCap(cls.Intent)),
		Intent:     cls.Intent,
	}

	publish(ctx, h.publisher, domain.RecommendationServed{
		Flow:       domain.FlowChat,
		Intent:     cls.Intent,
		ProductIDs: reply.ProductIDs,
		UserID:     q.UserID,
	})

	span.AddEvent("reply.rendered", trace.WithAttributes(attribute.Int("products.referenced", len(reply.ProductIDs))))
	return reply, nil
}

// catalogCeiling is the price ceiling to ask the catalog for; zero means none.
func catalogCeiling(ctx domain.ShoppingContext) float64 {
	if ctx.Budget == nil || ctx.Budget.Unbounded() {
		return 0
	}
	return ctx.Budget.Max
}

// referencedIDs returns the IDs of the items the reply lists, or nil.
func referencedIDs(selected []domain.ScoredCandidate, limit int) []string {
	if len(selected) == 0 {
		return nil
	}
	if len(selected) > limit {
		selected = selected[:limit]
	}
	ids := make([]string, len(selected))
	for i, c := range selected {
		ids[i] = c.Product.ID
	}
	return ids
}
