package highlight

import (
	"fmt"
	"math"
	"testing"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/command"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func highlights(n int) []domain.Highlight {
	hs := make([]domain.Highlight, n)
	for i := range hs {
		hs[i] = domain.NewHighlight(int64(100+i), fmt.Sprintf("H%d", i), nil)
	}
	return hs
}

func TestRenderLastPartialPage(t *testing.T) {
	page := Render(highlights(7), 2, 3)

	require.Len(t, page.Entries, 1)
	assert.Equal(t, int64(106), page.Entries[0].ID)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
	assert.Equal(t, 2, page.Index)
}

func TestRenderFirstPage(t *testing.T) {
	page := Render(highlights(7), 0, 3)

	require.Len(t, page.Entries, 3)
	assert.Equal(t, "🌟 H0", page.Entries[0].Label)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)
}

func TestRenderOutOfRange(t *testing.T) {
	page := Render(highlights(4), 5, 2)

	assert.True(t, page.Empty())
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestRenderHugePage(t *testing.T) {
	action, err := command.ParseAction("highlights_next_3074457345618258603")
	require.NoError(t, err)

	for _, page := range []int{action.Page, math.MaxInt, math.MaxInt / 2} {
		for _, size := range []int{1, 3, 5} {
			var p Page
			require.NotPanics(t, func() { p = Render(highlights(7), page, size) }, "page %d size %d", page, size)
			assert.True(t, p.Empty())
			assert.True(t, p.HasPrev)
			assert.False(t, p.HasNext)
			assert.Equal(t, page, p.Index)
		}
	}
}

func TestRenderEntryCounts(t *testing.T) {
	for n := 0; n <= 12; n++ {
		hs := highlights(n)
		for size := 1; size <= 5; size++ {
			for p := 0; p <= 14; p++ {
				page := Render(hs, p, size)

				want := n - p*size
				if want > size {
					want = size
				}
				if want < 0 {
					want = 0
				}
				assert.Len(t, page.Entries, want, "n=%d size=%d page=%d", n, size, p)

				nextNonEmpty := !Render(hs, p+1, size).Empty()
				assert.Equal(t, nextNonEmpty, page.HasNext, "n=%d size=%d page=%d", n, size, p)
				assert.Equal(t, p > 0, page.HasPrev)
			}
		}
	}
}

func TestRenderNegativePage(t *testing.T) {
	page := Render(highlights(3), -1, 2)
	assert.True(t, page.Empty())
	assert.False(t, page.HasPrev)
}

func TestLabelTruncates(t *testing.T) {
	assert.Equal(t, "🌟 Holiday in Bali...", Label("Holiday in Bali 2023"))
	assert.Equal(t, "🌟 Short", Label("Short"))
}

func TestResolve(t *testing.T) {
	hs := highlights(5)

	h, ok := Resolve(hs, 103)
	require.True(t, ok)
	assert.Equal(t, "H3", h.Title)

	_, ok = Resolve(hs, 999)
	assert.False(t, ok)

	_, ok = Resolve(nil, 100)
	assert.False(t, ok)
}
