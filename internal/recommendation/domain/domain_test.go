package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetRangeJSON(t *testing.T) {
	data, err := json.Marshal(BudgetRange{Min: 500, Max: math.Inf(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"min":500,"max":null}`, string(data))

	data, err = json.Marshal(ShoppingContext{Budget: &BudgetRange{Min: 0, Max: 100}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"budget":{"min":0,"max":100}}`, string(data))

	var b BudgetRange
	require.NoError(t, json.Unmarshal([]byte(`{"min":10}`), &b))
	assert.True(t, b.Unbounded())
	assert.Equal(t, 10.0, b.Min)
}

func TestProductHelpers(t *testing.T) {
	p := Product{Title: "Red Dress", Description: "Silk", Category: "Clothing", Tags: []string{"Evening"}}

	assert.Equal(t, "red dress silk", p.SearchText())
	assert.True(t, p.HasTag("evening"))
	assert.False(t, p.HasTag("casual"))
	assert.True(t, p.InCategory([]string{"home", "clothing"}))
	assert.False(t, p.InCategory(nil))
}

func TestCloneProductsDoesNotAlias(t *testing.T) {
	in := []Product{{ID: "1", Tags: []string{"a"}}}
	out := CloneProducts(in)
	out[0].Tags[0] = "b"
	out[0].ID = "2"

	assert.Equal(t, "a", in[0].Tags[0])
	assert.Equal(t, "1", in[0].ID)
	assert.Nil(t, CloneProducts(nil))
}

func TestMoodProfileHelpers(t *testing.T) {
	p := MoodProfile{PreferredCategories: []string{"home", "beauty"}, AvoidTags: []string{"loud"}}

	assert.Equal(t, 1, p.CategoryIndex("Beauty"))
	assert.Equal(t, -1, p.CategoryIndex("sports"))
	assert.True(t, p.Avoids(Product{Tags: []string{"LOUD"}}))
	assert.False(t, p.Avoids(Product{}))
	assert.Equal(t, 0.75, BudgetStrategy("unknown").Fraction())
}

func TestIntentNeedsCatalog(t *testing.T) {
	assert.False(t, IntentGreeting.NeedsCatalog())
	assert.False(t, IntentOffTopic.NeedsCatalog())
	assert.True(t, IntentProductSearch.NeedsCatalog())
}
