package query

import (
	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/intent"
)

// ClassifyIntentQuery represents the query to classify a message
type ClassifyIntentQuery struct {
	Message string
}

// ClassifyIntentHandler exposes the classifier on its own.
type ClassifyIntentHandler struct {
	classifier *intent.Classifier
}

// NewClassifyIntentHandler creates a new classify intent handler
func NewClassifyIntentHandler(classifier *intent.Classifier) *ClassifyIntentHandler {
	return &ClassifyIntentHandler{classifier: classifier}
}

// Handle executes the classify intent query
func (h *ClassifyIntentHandler) Handle(q ClassifyIntentQuery) domain.Classification {
	return h.classifier.Classify(q.Message)
}
