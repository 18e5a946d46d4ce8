package instagramimpl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
)

const mediaTypeVideo = 2

func (ig *InstaImpl) FetchProfile(ctx context.Context, username string) (*domain.Profile, error) {
	ig.logger.Info("Fetching profile", "username", username)

	var profile *domain.Profile
	err := ig.do(ctx, "FetchProfile", func() error {
		visited, err := ig.client.VisitProfile(username)
		if err != nil {
			return classify(err, fmt.Sprintf("visit profile %s", username))
		}
		if visited == nil || visited.User == nil {
			return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("profile %s not found", username))
		}

		ig.rememberUser(visited.User)
		profile = toProfile(visited)
		return nil
	})
	if err != nil {
		ig.logger.Error("Failed to fetch profile", "username", username, "error", err)
		return nil, err
	}

	return profile, nil
}

func (ig *InstaImpl) FetchStories(ctx context.Context, profileID int64) ([]domain.MediaItem, error) {
	ig.logger.Info("Fetching stories", "profile_id", profileID)

	var items []domain.MediaItem
	err := ig.do(ctx, "FetchStories", func() error {
		user, err := ig.lookupUser(profileID)
		if err != nil {
			return err
		}

		stories, err := user.Stories()
		if err != nil {
			return classifyRefusal(err, fmt.Sprintf("stories of %s", user.Username))
		}
		if stories == nil {
			return nil
		}

		items = toMediaItems(stories.Reel.Items, user.Username)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ig.logger.Info("Found stories", "profile_id", profileID, "count", len(items))
	return items, nil
}

func (ig *InstaImpl) FetchHighlights(ctx context.Context, profile *domain.Profile) ([]domain.Highlight, error) {
	ig.logger.Info("Fetching highlights", "username", profile.Username)

	var highlights []domain.Highlight
	err := ig.do(ctx, "FetchHighlights", func() error {
		user, err := ig.lookupUser(profile.ID)
		if err != nil {
			return err
		}

		reels, err := user.Highlights()
		if err != nil {
			return classifyRefusal(err, fmt.Sprintf("highlights of %s", profile.Username))
		}

		highlights = make([]domain.Highlight, 0, len(reels))
		for _, reel := range reels {
			id, err := parseHighlightID(reel.ID)
			if err != nil {
				ig.logger.Warn("Skipping highlight with unexpected id", "id", reel.ID, "error", err)
				continue
			}
			highlights = append(highlights, domain.NewHighlight(id, reel.Title, ig.highlightLoader(reel, profile.Username)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ig.logger.Info("Found highlights", "username", profile.Username, "count", len(highlights))
	return highlights, nil
}

// highlightLoader defers reel.Sync until a highlight is actually opened.
func (ig *InstaImpl) highlightLoader(reel *goinsta.Reel, owner string) domain.ItemsLoader {
	return func(ctx context.Context) ([]domain.MediaItem, error) {
		var items []domain.MediaItem
		err := ig.do(ctx, "LoadHighlight", func() error {
			if len(reel.Items) == 0 {
				if err := reel.Sync(); err != nil {
					return classify(err, fmt.Sprintf("highlight %q", reel.Title))
				}
			}
			items = toMediaItems(reel.Items, owner)
			return nil
		})
		return items, err
	}
}

// lookupUser returns the handle fetched with the profile, falling back to a
// lookup by id after a re-login emptied the cache. The caller holds mu.
func (ig *InstaImpl) lookupUser(profileID int64) (*goinsta.User, error) {
	if user, ok := ig.users[profileID]; ok {
		return user, nil
	}

	user, err := ig.client.Profiles.ByID(strconv.FormatInt(profileID, 10))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("lookup profile %d", profileID))
	}
	ig.rememberUser(user)
	return user, nil
}

func toProfile(p *goinsta.Profile) *domain.Profile {
	u := p.User
	profile := &domain.Profile{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Biography:  u.Biography,
		IsVerified: u.IsVerified,
		IsBusiness: u.IsBusiness,
		IsPrivate:  u.IsPrivate,
		Followers:  u.FollowerCount,
		Following:  u.FollowingCount,
		Posts:      u.MediaCount,
		AvatarURL:  u.ProfilePicURL,
	}
	if u.HdProfilePicURLInfo.URL != "" {
		profile.AvatarURL = u.HdProfilePicURLInfo.URL
	}
	if p.Friendship != nil {
		profile.FollowedByViewer = p.Friendship.Following
	}
	return profile
}

func toMediaItems(raw []*goinsta.Item, owner string) []domain.MediaItem {
	items := make([]domain.MediaItem, 0, len(raw))
	for _, it := range raw {
		if it == nil {
			continue
		}
		items = append(items, toMediaItem(it, owner))
	}
	return items
}

func toMediaItem(it *goinsta.Item, owner string) domain.MediaItem {
	item := domain.MediaItem{
		ID:      strconv.FormatInt(it.Pk, 10),
		TakenAt: time.Unix(it.TakenAt, 0).UTC(),
		Kind:    domain.MediaPhoto,
		Owner:   owner,
	}

	if it.MediaType == mediaTypeVideo && len(it.Videos) > 0 {
		item.Kind = domain.MediaVideo
		item.MediaURL = it.Videos[0].URL
	} else {
		item.MediaURL = it.Images.GetBest()
	}
	return item
}

// parseHighlightID accepts the "highlight:<n>" strings the API uses as well
// as bare numbers.
func parseHighlightID(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case string:
		return strconv.ParseInt(strings.TrimPrefix(v, "highlight:"), 10, 64)
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("unsupported highlight id type %T", raw)
	}
}
