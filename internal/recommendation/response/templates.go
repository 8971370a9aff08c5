package response

import "github.com/tair/shopping-advisor/internal/recommendation/domain"

var greetings = []string{
	"Hi there! Tell me what you're shopping for and I'll find a few options.",
	"Hello! Looking for something specific, or would you like a recommendation?",
	"Hey! I can search the catalog or help you stay within a budget. What do you need?",
}

var offTopicReplies = []string{
	"I'm a shopping assistant, so I can't help with that, but I'd be glad to help you find a product.",
	"That's outside what I can help with. Is there something you'd like to shop for?",
	"I can only help with shopping questions. Want me to look for something in the catalog?",
}

// branch holds the per-intent wording.
type branch struct {
	cap    int
	lead   func(ctx domain.ShoppingContext) string
	single string
	empty  func(ctx domain.ShoppingContext) string
}

var branches = map[domain.Intent]branch{
	domain.IntentProductSearch: {
		cap: 5,
		lead: func(ctx domain.ShoppingContext) string {
			return "Here's what I found" + scope(ctx) + ":"
		},
		single: "I found the %s at %s",
		empty: func(ctx domain.ShoppingContext) string {
			return "I couldn't find anything matching that" + scope(ctx) + ". Could you broaden the search or tell me a bit more about what you need?"
		},
	},
	domain.IntentBudgetFilter: {
		cap: 5,
		lead: func(ctx domain.ShoppingContext) string {
			return "Here are the best options" + budgetPhrase(ctx) + ":"
		},
		single: "The best option I found is the %s at %s",
		empty: func(ctx domain.ShoppingContext) string {
			return "I couldn't find anything" + budgetPhrase(ctx) + ". Would you like me to widen the price range?"
		},
	},
	domain.IntentComparison: {
		cap: 3,
		lead: func(domain.ShoppingContext) string {
			return "Here's how these options compare:"
		},
		single: "I could only find one match to compare, the %s at %s",
		empty: func(domain.ShoppingContext) string {
			return "I couldn't find the products you'd like to compare. Which items or categories should I look at?"
		},
	},
	domain.IntentRecommendation: {
		cap: 3,
		lead: func(domain.ShoppingContext) string {
			return "Here are my top recommendations:"
		},
		single: "I'd recommend the %s at %s",
		empty: func(domain.ShoppingContext) string {
			return "I don't have a good match yet. What will you use it for, and is there a budget I should stay within?"
		},
	},
	domain.IntentStyleAdvice: {
		cap: 3,
		lead: func(domain.ShoppingContext) string {
			return "Here are a few pieces that would work well:"
		},
		single: "The %s at %s would be a great choice",
		empty: func(domain.ShoppingContext) string {
			return "I couldn't find pieces that fit that request. What's the occasion or the look you're going for?"
		},
	},
	domain.IntentGeneralHelp: {
		cap: 3,
		lead: func(domain.ShoppingContext) string {
			return "Here are a few products you might like:"
		},
		single: "You might like the %s at %s",
		empty: func(domain.ShoppingContext) string {
			return "I can help you find products or compare options within your budget. What are you shopping for?"
		},
	},
}
