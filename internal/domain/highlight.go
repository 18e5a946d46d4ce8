package domain

import (
	"context"
	"errors"
)

// ItemsLoader enumerates a highlight's items on demand.
type ItemsLoader func(ctx context.Context) ([]MediaItem, error)

var errNoLoader = errors.New("highlight has no item loader")

type Highlight struct {
	ID    int64
	Title string

	load ItemsLoader
}

func NewHighlight(id int64, title string, load ItemsLoader) Highlight {
	return Highlight{ID: id, Title: title, load: load}
}

// Items fetches the highlight's media from the remote platform.
func (h Highlight) Items(ctx context.Context) ([]MediaItem, error) {
	if h.load == nil {
		return nil, errNoLoader
	}
	return h.load(ctx)
}
