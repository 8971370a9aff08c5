package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

func product(id, title, category string, price float64, tags ...string) domain.Product {
	return domain.Product{ID: id, Title: title, Category: category, Price: price, Tags: tags, InStock: true}
}

func TestProximity(t *testing.T) {
	assert.Equal(t, 40.0, proximity(700, 700, 40))
	assert.InDelta(t, 20.0, proximity(350, 700, 40), 1e-9)
	assert.Equal(t, 0.0, proximity(2000, 700, 40))
	assert.Equal(t, 0.0, proximity(10, 0, 40))
}

func TestBudgetProximity(t *testing.T) {
	bounded := BudgetProximity(&domain.BudgetRange{Min: 0, Max: 1000})

	c := bounded(product("1", "a", "x", 700))
	assert.Equal(t, 40.0, c.Score)
	assert.Equal(t, "great value within your budget", c.Reason)

	c = bounded(product("2", "a", "x", 900))
	assert.InDelta(t, 40-40*200.0/700, c.Score, 1e-9)
	assert.Empty(t, c.Reason)

	open := BudgetProximity(&domain.BudgetRange{Min: 500, Max: math.Inf(1)})
	c = open(product("3", "a", "x", 500))
	assert.Equal(t, 40.0, c.Score)
	assert.Empty(t, c.Reason)

	assert.Equal(t, Contribution{}, BudgetProximity(nil)(product("4", "a", "x", 1)))
}

func TestCategoryMatch(t *testing.T) {
	f := CategoryMatch([]string{"electronics"})

	assert.Equal(t, Contribution{Score: 30, Reason: "perfect for electronics"}, f(product("1", "a", "Electronics", 1)))
	assert.Equal(t, Contribution{}, f(product("2", "a", "home", 1)))
}

func TestKeywordRelevance(t *testing.T) {
	f := KeywordRelevance("Wireless gaming headphones for me")
	assert.Equal(t, 10.0, f(product("1", "Wireless Gaming Headset", "electronics", 1)).Score)

	capped := KeywordRelevance("alpha bravo charlie delta echo foxtrot golf")
	p := domain.Product{Title: "alpha bravo charlie", Description: "delta echo foxtrot golf"}
	assert.Equal(t, 30.0, capped(p).Score)

	assert.Equal(t, 0.0, KeywordRelevance("a an")(p).Score)

	repeated := KeywordRelevance("laptop laptop bag")
	assert.Equal(t, 10.0, repeated(product("3", "Gaming Laptop", "electronics", 900)).Score)
}

func TestUseCaseMatch(t *testing.T) {
	f := UseCaseMatch("gaming")

	c := f(product("1", "RGB Gaming Keyboard", "electronics", 80))
	assert.Equal(t, 14.0, c.Score)
	assert.Equal(t, "ideal for gaming use", c.Reason)

	c = f(product("2", "Gaming Mouse", "electronics", 40))
	assert.Equal(t, 7.0, c.Score)
	assert.Empty(t, c.Reason)

	assert.Equal(t, Contribution{}, UseCaseMatch("")(product("3", "Gaming Mouse", "electronics", 40)))
}

func TestPreferenceMatch(t *testing.T) {
	f := PreferenceMatch([]string{"wireless", "black"})

	c := f(product("1", "Wireless Earbuds", "electronics", 60, "black"))
	assert.Equal(t, 14.0, c.Score)
	assert.Equal(t, "matches your preference for wireless", c.Reason)

	c = f(product("2", "Black Mug", "home", 10))
	assert.Equal(t, 7.0, c.Score)
	assert.Empty(t, c.Reason)
}

func TestPreferenceMatchUsesSynonyms(t *testing.T) {
	f := PreferenceMatch([]string{"bluetooth", "sturdy"})

	c := f(product("1", "Durable Wireless Speaker", "electronics", 60))
	assert.Equal(t, 14.0, c.Score)
	assert.Equal(t, "matches your preference for bluetooth", c.Reason)

	assert.Equal(t, 0.0, f(product("2", "Ceramic Mug", "home", 10)).Score)
}

func TestBodyTypeMatch(t *testing.T) {
	f := BodyTypeMatch("petite")

	c := f(product("1", "Cropped High Waist Jeans", "clothing", 50))
	assert.Equal(t, 15.0, c.Score)
	assert.NotEmpty(t, c.Reason)

	c = f(product("2", "Oversized Maxi Dress", "clothing", 50))
	assert.Equal(t, 0.0, c.Score)
	assert.Empty(t, c.Reason)

	c = f(product("3", "Plain Tee", "clothing", 20))
	assert.Equal(t, 5.0, c.Score)
	assert.Empty(t, c.Reason)

	assert.Equal(t, Contribution{}, f(product("4", "Cropped Laptop Sleeve", "accessories", 20)))
}

func TestConversationalAccumulatesReasons(t *testing.T) {
	ctx := domain.ShoppingContext{
		Budget:     &domain.BudgetRange{Min: 0, Max: 1000},
		Categories: []string{"electronics"},
		UseCase:    "gaming",
	}
	s := NewConversational(ctx, "gaming laptop under 1000")

	c := s.Score(product("1", "RGB Gaming Laptop", "electronics", 700))

	assert.Equal(t, 10+40+30+10+14.0, c.Score)
	assert.Equal(t, []string{"great value within your budget", "perfect for electronics", "ideal for gaming use"}, c.Reasons)
}

func TestConversationalUnmatchedKeepsBase(t *testing.T) {
	c := NewConversational(domain.ShoppingContext{}, "").Score(product("1", "Thing", "home", 5))

	assert.Equal(t, 10.0, c.Score)
	assert.Empty(t, c.Reasons)
}

func TestRankIsStable(t *testing.T) {
	products := []domain.Product{
		product("a", "x", "home", 10),
		product("b", "x", "home", 10),
		product("c", "Gaming Chair", "home", 10),
	}

	ranked := Rank(NewConversational(domain.ShoppingContext{}, "gaming"), products)

	require.Len(t, ranked, 3)
	assert.Equal(t, "c", ranked[0].Product.ID)
	assert.Equal(t, "a", ranked[1].Product.ID)
	assert.Equal(t, "b", ranked[2].Product.ID)
}

func TestMoodPremiumTarget(t *testing.T) {
	profile := domain.MoodProfile{
		PreferredCategories: []string{"accessories"},
		BudgetStrategy:      domain.BudgetPremium,
		ExplanationTemplate: "Great for tonight.",
	}
	s := NewMood(profile, 500)

	near := s.Score(product("1", "Watch", "accessories", 440))
	far := s.Score(product("2", "Watch", "accessories", 100))

	assert.Greater(t, near.Score, far.Score)
	assert.InDelta(t, 40-40*10.0/450+30, near.Score, 1e-9)
	assert.Equal(t, []string{"Great for tonight."}, near.Reasons)
}

func TestMoodKeywordHitsFallBackToIntentTags(t *testing.T) {
	profile := domain.MoodProfile{
		IntentTags:          []string{"cozy", "comfort"},
		PreferredCategories: []string{"home", "clothing"},
		ExplanationTemplate: "Cozy.",
	}
	s := NewMood(profile, 100)

	c := s.Score(product("1", "Cozy Blanket", "clothing", 1000, "comfort"))
	assert.Equal(t, 20.0+25, c.Score)
}

func TestMoodRestrict(t *testing.T) {
	profile := domain.MoodProfile{
		Keywords:            []string{"noise-cancelling", "candle"},
		AvoidTags:           []string{"loud"},
		PreferredCategories: []string{"home", "electronics"},
	}
	s := NewMood(profile, 200)

	products := []domain.Product{
		product("1", "Noise Cancelling Headphones", "electronics", 150),
		product("2", "Soy Candle", "home", 20, "Loud"),
		product("3", "Scented Candle", "beauty", 20),
		product("4", "Desk Lamp", "home", 40),
		product("5", "Candle Set", "HOME", 30),
	}

	got := s.Restrict(products)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "5", got[1].ID)
}

func TestMoodRestrictWithoutKeywordsUsesCategoryOnly(t *testing.T) {
	s := NewMood(domain.MoodProfile{IntentTags: []string{"cozy"}, PreferredCategories: []string{"home"}}, 100)

	got := s.Restrict([]domain.Product{product("1", "Anything", "home", 5), product("2", "Other", "sports", 5)})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestCategoryPriority(t *testing.T) {
	f := CategoryPriority([]string{"a", "b", "c", "d", "e", "f", "g", "h"})

	assert.Equal(t, 30.0, f(product("1", "x", "a", 1)).Score)
	assert.Equal(t, 25.0, f(product("2", "x", "B", 1)).Score)
	assert.Equal(t, 0.0, f(product("3", "x", "h", 1)).Score)
	assert.Equal(t, 0.0, f(product("4", "x", "z", 1)).Score)
}

func TestFallbackOrdersByProximity(t *testing.T) {
	products := []domain.Product{
		product("cheap", "x", "home", 10),
		product("close", "x", "home", 75),
		product("exact", "x", "sports", 70),
	}

	ranked := Rank(NewFallback(100, "brunch"), products)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"exact", "close", "cheap"}, []string{ranked[0].Product.ID, ranked[1].Product.ID, ranked[2].Product.ID})
	assert.Equal(t, 0.0, ranked[0].Score)
	assert.Contains(t, ranked[0].TopReason(), "brunch")
}
