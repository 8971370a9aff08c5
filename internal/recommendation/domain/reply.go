package domain

// ChatReply is the result of the conversational flow. ProductIDs is nil
// when the reply references no product.
type ChatReply struct {
	Reply      string   `json:"reply"`
	ProductIDs []string `json:"productIds"`
	Intent     Intent   `json:"intent"`
}

// Suggestion is one item of the mood flow result.
type Suggestion struct {
	ProductID string  `json:"productId"`
	Reason    string  `json:"reason"`
	Product   Summary `json:"product"`
}

// MoodSuggestions is the result of the mood flow.
type MoodSuggestions struct {
	Profile     MoodProfile  `json:"profile"`
	Suggestions []Suggestion `json:"suggestions"`
	Fallback    bool         `json:"fallback"`
}
