package command

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type Client interface {
	HandleCommand(ctx context.Context) error
}

// Kind enumerates the inline button actions.
type Kind int

const (
	KindProfilePic Kind = iota + 1
	KindStory
	KindHighlights
	KindHighlightsNext
	KindHighlightsPrev
	KindHighlightItem
	KindProfileInfo
)

const (
	tokenProfilePic      = "profile_pic"
	tokenStory           = "story"
	tokenHighlights      = "highlights"
	tokenProfileInfo     = "profile_info"
	prefixHighlightsNext = "highlights_next_"
	prefixHighlightsPrev = "highlights_prev_"
	prefixHighlightItem  = "highlight_"
)

var ErrUnknownAction = errors.New("unknown action")

// Action is a decoded callback token. Page is set for the navigation kinds,
// HighlightID for KindHighlightItem.
type Action struct {
	Kind        Kind
	Page        int
	HighlightID int64
}

func ProfilePic() Action {
	return Action{Kind: KindProfilePic}
}

func Story() Action {
	return Action{Kind: KindStory}
}

func Highlights() Action {
	return Action{Kind: KindHighlights}
}

func ProfileInfo() Action {
	return Action{Kind: KindProfileInfo}
}

func HighlightsNext(page int) Action {
	return Action{Kind: KindHighlightsNext, Page: page}
}

func HighlightsPrev(page int) Action {
	return Action{Kind: KindHighlightsPrev, Page: page}
}

func HighlightItem(id int64) Action {
	return Action{Kind: KindHighlightItem, HighlightID: id}
}

// ParseAction decodes a callback token.
func ParseAction(token string) (Action, error) {
	switch token {
	case tokenProfilePic:
		return ProfilePic(), nil
	case tokenStory:
		return Story(), nil
	case tokenHighlights:
		return Highlights(), nil
	case tokenProfileInfo:
		return ProfileInfo(), nil
	}

	switch {
	case strings.HasPrefix(token, prefixHighlightsNext):
		page, err := parsePage(strings.TrimPrefix(token, prefixHighlightsNext))
		if err != nil {
			return Action{}, fmt.Errorf("%w %q: %v", ErrUnknownAction, token, err)
		}
		return HighlightsNext(page), nil
	case strings.HasPrefix(token, prefixHighlightsPrev):
		page, err := parsePage(strings.TrimPrefix(token, prefixHighlightsPrev))
		if err != nil {
			return Action{}, fmt.Errorf("%w %q: %v", ErrUnknownAction, token, err)
		}
		return HighlightsPrev(page), nil
	case strings.HasPrefix(token, prefixHighlightItem):
		id, err := strconv.ParseInt(strings.TrimPrefix(token, prefixHighlightItem), 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("%w %q: %v", ErrUnknownAction, token, err)
		}
		return HighlightItem(id), nil
	}

	return Action{}, fmt.Errorf("%w %q", ErrUnknownAction, token)
}

func parsePage(s string) (int, error) {
	page, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if page < 0 {
		return 0, fmt.Errorf("negative page %d", page)
	}
	return page, nil
}

// Token encodes the action as callback data.
func (a Action) Token() string {
	switch a.Kind {
	case KindProfilePic:
		return tokenProfilePic
	case KindStory:
		return tokenStory
	case KindHighlights:
		return tokenHighlights
	case KindProfileInfo:
		return tokenProfileInfo
	case KindHighlightsNext:
		return prefixHighlightsNext + strconv.Itoa(a.Page)
	case KindHighlightsPrev:
		return prefixHighlightsPrev + strconv.Itoa(a.Page)
	case KindHighlightItem:
		return prefixHighlightItem + strconv.FormatInt(a.HighlightID, 10)
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindProfilePic:
		return "profile_pic"
	case KindStory:
		return "story"
	case KindHighlights:
		return "highlights"
	case KindHighlightsNext:
		return "highlights_next"
	case KindHighlightsPrev:
		return "highlights_prev"
	case KindHighlightItem:
		return "highlight_item"
	case KindProfileInfo:
		return "profile_info"
	default:
		return "unknown"
	}
}

// URLMatcher extracts the username from a profile link on host.
type URLMatcher struct {
	re *regexp.Regexp
}

func NewURLMatcher(host string) *URLMatcher {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	return &URLMatcher{
		re: regexp.MustCompile(`(?i)^\s*(?:https?://)?(?:www\.)?` + regexp.QuoteMeta(host) + `/([a-z0-9_.]+)/?`),
	}
}

// Username returns false when text is not a profile link.
func (m *URLMatcher) Username(text string) (string, bool) {
	match := m.re.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}
