package highlight

import (
	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/formatter"
)

const titleLimit = 15

// Entry is one selectable highlight on a page.
type Entry struct {
	Label string
	ID    int64
}

// Page is the rendering of one zero-based page index. A page past the end is
// valid and simply has no entries.
type Page struct {
	Index   int
	Entries []Entry
	HasPrev bool
	HasNext bool
}

func (p Page) Empty() bool {
	return len(p.Entries) == 0
}

// Render slices hs into the page-th page of size entries. Page numbers are not
// clamped; callers only offer navigation the flags allow.
func Render(hs []domain.Highlight, page, size int) Page {
	out := Page{
		Index:   page,
		HasPrev: page > 0,
	}
	if size < 1 || page < 0 {
		return out
	}

	// Compare page indexes, not offsets: page*size overflows for huge pages.
	if len(hs) == 0 || page > (len(hs)-1)/size {
		return out
	}

	start := page * size
	end := len(hs)
	if end-start > size {
		end = start + size
		out.HasNext = true
	}

	out.Entries = make([]Entry, 0, end-start)
	for _, h := range hs[start:end] {
		out.Entries = append(out.Entries, Entry{Label: Label(h.Title), ID: h.ID})
	}
	return out
}

// Label is the button text for a highlight title.
func Label(title string) string {
	return "🌟 " + formatter.Truncate(title, titleLimit)
}

// Resolve finds a highlight by id in the whole collection.
func Resolve(hs []domain.Highlight, id int64) (domain.Highlight, bool) {
	for _, h := range hs {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Highlight{}, false
}
