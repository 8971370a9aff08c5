package lexicon

// BodyType describes how a body-type label shifts clothing relevance.
type BodyType struct {
	Label    string
	Keywords []string
	Positive []string
	Negative []string
	Reason   string
}

// Categories maps each top-level catalog category to query keywords.
var Categories = NewTable([]Entry{
	{Label: "electronics", Keywords: []string{
		"electronics", "electronic", "laptop", "computer", "notebook", "phone", "smartphone",
		"tablet", "headphone", "earbud", "speaker", "camera", "tv", "television", "monitor",
		"keyboard", "mouse", "charger", "smartwatch", "console", "gadget",
	}},
	{Label: "clothing", Keywords: []string{
		"clothing", "clothes", "shirt", "t shirt", "tee", "dress", "jeans", "pants", "trousers",
		"jacket", "coat", "sweater", "hoodie", "skirt", "shorts", "blouse", "suit", "outfit",
		"shoe", "sneaker", "boot", "legging",
	}},
	{Label: "accessories", Keywords: []string{
		"accessories", "accessory", "watch", "bag", "handbag", "backpack", "wallet", "belt",
		"sunglasses", "jewelry", "necklace", "bracelet", "earring", "scarf",
	}},
	{Label: "home", Keywords: []string{
		"home", "house", "furniture", "lamp", "sofa", "chair", "desk", "bedding", "pillow",
		"blanket", "kitchen", "cookware", "mug", "candle", "decor", "vase", "rug",
	}},
	{Label: "sports", Keywords: []string{
		"sports", "sport", "yoga", "fitness", "gym", "running", "workout", "bike", "bicycle",
		"tennis", "football", "soccer", "basketball", "hiking", "camping", "dumbbell", "treadmill",
	}},
	{Label: "beauty", Keywords: []string{
		"beauty", "makeup", "skincare", "lipstick", "perfume", "fragrance", "cosmetic",
		"serum", "moisturizer", "shampoo", "nail polish",
	}},
})

// UseCases maps a use-case label to keywords that signal it in a query or
// a product description.
var UseCases = NewTable([]Entry{
	{Label: "gaming", Keywords: []string{"gaming", "gamer", "game", "rgb", "fps", "esports"}},
	{Label: "work", Keywords: []string{"work", "office", "business", "professional", "productivity", "meeting"}},
	{Label: "travel", Keywords: []string{"travel", "trip", "vacation", "portable", "carry on", "luggage"}},
	{Label: "fitness", Keywords: []string{"fitness", "workout", "gym", "training", "exercise", "sweat"}},
	{Label: "outdoor", Keywords: []string{"outdoor", "outdoors", "hiking", "camping", "waterproof", "rugged", "trail"}},
	{Label: "school", Keywords: []string{"school", "student", "college", "study", "university", "class"}},
	{Label: "party", Keywords: []string{"party", "night out", "celebration", "festive", "club"}},
	{Label: "everyday", Keywords: []string{"everyday", "daily", "casual", "basic"}},
})

// Preferences maps descriptive preference labels to their synonyms.
var Preferences = NewTable([]Entry{
	{Label: "lightweight", Keywords: []string{"lightweight", "light weight", "ultralight"}},
	{Label: "durable", Keywords: []string{"durable", "sturdy", "long lasting"}},
	{Label: "wireless", Keywords: []string{"wireless", "bluetooth", "cordless"}},
	{Label: "waterproof", Keywords: []string{"waterproof", "water resistant"}},
	{Label: "comfortable", Keywords: []string{"comfortable", "comfy", "soft"}},
	{Label: "eco-friendly", Keywords: []string{"eco friendly", "sustainable", "organic", "recycled"}},
	{Label: "premium", Keywords: []string{"premium", "luxury", "high end"}},
	{Label: "compact", Keywords: []string{"compact", "portable", "mini"}},
	{Label: "stylish", Keywords: []string{"stylish", "fashionable", "trendy", "elegant"}},
	{Label: "minimalist", Keywords: []string{"minimalist", "minimal", "simple"}},
	{Label: "black", Keywords: []string{"black"}},
	{Label: "white", Keywords: []string{"white"}},
	{Label: "red", Keywords: []string{"red"}},
	{Label: "blue", Keywords: []string{"blue", "navy"}},
	{Label: "green", Keywords: []string{"green"}},
	{Label: "pink", Keywords: []string{"pink"}},
})

// BodyTypes lists body-type labels in lookup order.
var BodyTypes = []BodyType{
	{
		Label:    "petite",
		Keywords: []string{"petite", "short build", "short frame", "small frame", "i m short"},
		Positive: []string{"petite", "cropped", "high waist", "high waisted", "fitted", "ankle length"},
		Negative: []string{"oversized", "maxi", "baggy", "longline"},
		Reason:   "proportioned for a petite frame",
	},
	{
		Label:    "plus",
		Keywords: []string{"plus size", "curvy", "full figured"},
		Positive: []string{"wrap", "a line", "empire waist", "stretch", "relaxed fit", "plus size"},
		Negative: []string{"bodycon", "skinny", "cropped"},
		Reason:   "cut to flatter curvier figures",
	},
	{
		Label:    "tall",
		Keywords: []string{"tall", "long legs", "long torso"},
		Positive: []string{"tall", "long", "maxi", "extra length", "wide leg"},
		Negative: []string{"cropped", "petite", "mini"},
		Reason:   "extra length suits a tall build",
	},
	{
		Label:    "athletic",
		Keywords: []string{"athletic build", "muscular", "broad shoulders", "athletic body"},
		Positive: []string{"stretch", "athletic fit", "performance", "tapered", "slim fit"},
		Negative: []string{"boxy", "oversized", "skinny"},
		Reason:   "tailored for an athletic build",
	},
}

// BodyTypeTable indexes the query keywords of BodyTypes.
var BodyTypeTable = func() *Table {
	entries := make([]Entry, len(BodyTypes))
	for i, b := range BodyTypes {
		entries[i] = Entry{Label: b.Label, Keywords: b.Keywords}
	}
	return NewTable(entries)
}()

// LookupBodyType returns the body-type definition for label.
func LookupBodyType(label string) (BodyType, bool) {
	for _, b := range BodyTypes {
		if b.Label == label {
			return b, true
		}
	}
	return BodyType{}, false
}

// OffTopic holds keywords for requests the assistant does not serve.
var OffTopic = NewTable([]Entry{
	{Label: "weather", Keywords: []string{"weather", "forecast", "temperature", "rain"}},
	{Label: "medical", Keywords: []string{"medical", "doctor", "symptom", "diagnosis", "medicine", "disease", "prescription"}},
	{Label: "legal", Keywords: []string{"legal", "lawyer", "lawsuit", "attorney", "court"}},
	{Label: "homework", Keywords: []string{"homework", "essay", "math problem", "equation", "assignment"}},
	{Label: "jokes", Keywords: []string{"joke", "funny story", "riddle"}},
	{Label: "news", Keywords: []string{"news", "politics", "election", "president"}},
	{Label: "cooking", Keywords: []string{"recipe", "cook dinner"}},
})

// Shopping holds keywords that mark a request as shopping related.
var Shopping = NewTable([]Entry{
	{Label: "shopping", Keywords: []string{
		"buy", "shop", "shopping", "product", "price", "recommend", "recommendation",
		"purchase", "order", "deal", "store",
	}},
})
