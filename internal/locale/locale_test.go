package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage(t *testing.T) {
	c := NewCatalog("id", nil)

	assert.Equal(t, "en", c.Language("en"))
	assert.Equal(t, "en", c.Language("en-US"))
	assert.Equal(t, "id", c.Language("ID"))
	assert.Equal(t, "id", c.Language("fr"))
	assert.Equal(t, "id", c.Language(""))
}

func TestUnknownDefaultFallsBackToEnglish(t *testing.T) {
	c := NewCatalog("xx", nil)
	assert.Equal(t, "en", c.Language("fr"))
}

func TestTextOverridesAndFallback(t *testing.T) {
	c := NewCatalog("en", map[string]map[string]string{
		"en": {Start: "hi there"},
		"fr": {InvalidURL: "URL invalide"},
	})

	assert.Equal(t, "hi there", c.Text("en", Start))
	assert.Equal(t, "URL invalide", c.Text("fr", InvalidURL))
	assert.Equal(t, builtin["en"][NoStories], c.Text("fr", NoStories))
	assert.Equal(t, "missing_key", c.Text("en", "missing_key"))
}

func TestTextFormatting(t *testing.T) {
	c := NewCatalog("en", nil)

	assert.Equal(t, "📤 3 stories sent", c.Text("en", StoriesSent, 3))
	assert.Equal(t, "Choose a feature for @jdoe:", c.Text("en", MenuPrompt, "jdoe"))
	assert.Equal(t, "Ya", c.YesNo("id", true))
	assert.Equal(t, "No", c.YesNo("en", false))
}

func TestBuiltinTablesShareKeys(t *testing.T) {
	for key := range builtin["en"] {
		_, ok := builtin["id"][key]
		assert.True(t, ok, "id table misses %s", key)
	}
}
