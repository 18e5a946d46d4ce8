package domain

import "time"

type MediaKind int

const (
	MediaPhoto MediaKind = iota + 1
	MediaVideo
)

func (k MediaKind) String() string {
	switch k {
	case MediaPhoto:
		return "photo"
	case MediaVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Glyph is the caption prefix used for the kind.
func (k MediaKind) Glyph() string {
	if k == MediaVideo {
		return "📹"
	}
	return "📸"
}

// MediaItem is a story or highlight entry. ID is unique within its collection.
type MediaItem struct {
	ID       string
	TakenAt  time.Time
	Kind     MediaKind
	MediaURL string
	Owner    string
}
