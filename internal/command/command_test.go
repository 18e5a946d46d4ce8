package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionRoundTrip(t *testing.T) {
	actions := []Action{
		ProfilePic(),
		Story(),
		Highlights(),
		ProfileInfo(),
		HighlightsNext(3),
		HighlightsPrev(0),
		HighlightItem(17912345678901234),
	}
	for _, want := range actions {
		got, err := ParseAction(want.Token())
		require.NoError(t, err, want.Token())
		assert.Equal(t, want, got)
	}
}

func TestParseActionTokens(t *testing.T) {
	a, err := ParseAction("highlights_next_2")
	require.NoError(t, err)
	assert.Equal(t, Action{Kind: KindHighlightsNext, Page: 2}, a)

	a, err = ParseAction("highlight_42")
	require.NoError(t, err)
	assert.Equal(t, Action{Kind: KindHighlightItem, HighlightID: 42}, a)
}

func TestParseActionRejects(t *testing.T) {
	for _, token := range []string{"", "reel", "highlights_next_", "highlights_next_x", "highlights_prev_-1", "highlight_abc"} {
		_, err := ParseAction(token)
		assert.ErrorIs(t, err, ErrUnknownAction, token)
	}
}

func TestURLMatcher(t *testing.T) {
	m := NewURLMatcher("instagram.com")

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://instagram.com/jdoe", "jdoe", true},
		{"https://INSTAGRAM.com/jdoe", "jdoe", true},
		{"http://www.instagram.com/j.doe_99/", "j.doe_99", true},
		{"instagram.com/jdoe?igsh=abc", "jdoe", true},
		{"  https://www.instagram.com/jdoe  ", "jdoe", true},
		{"not a url", "", false},
		{"https://example.com/jdoe", "", false},
		{"https://instagram.com/", "", false},
	}
	for _, tt := range tests {
		got, ok := m.Username(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
