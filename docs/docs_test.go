package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]json.RawMessage
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Shopping Advisor API", parsed.Info.Title)
	for _, path := range []string{"/api/chat", "/api/mood-suggestions", "/api/intent/classify", "/api/mood-profiles", "/api/mood-profiles/resolve", "/api/catalog/stats", "/health"} {
		assert.Contains(t, parsed.Paths, path)
	}
}
