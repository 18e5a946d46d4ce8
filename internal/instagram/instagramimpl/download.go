package instagramimpl

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
)

const captureTimeLayout = "2006-01-02_15-04-05"

var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
}

var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.8",
	"id-ID,id;q=0.9,en;q=0.7",
	"de-DE,de;q=0.9,en;q=0.6",
}

type headerPool struct {
	agents  []string
	landing string
}

func newHeaderPool(agents []string, host string) *headerPool {
	if len(agents) == 0 {
		agents = defaultUserAgents
	}
	return &headerPool{
		agents:  agents,
		landing: "https://www." + strings.TrimPrefix(host, "www.") + "/",
	}
}

func (h *headerPool) apply(req *http.Request) {
	req.Header.Set("User-Agent", h.agents[rand.Intn(len(h.agents))])
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))])
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Referer", h.landing)
}

func (ig *InstaImpl) DownloadItem(ctx context.Context, item domain.MediaItem, dir string) error {
	if item.MediaURL == "" {
		ig.logger.Warn("Item has no downloadable media", "id", item.ID)
		return nil
	}

	return ig.do(ctx, "DownloadItem", func() error {
		path := filepath.Join(dir, itemFileName(item))
		if err := ig.fetchToFile(ctx, item.MediaURL, path); err != nil {
			return err
		}
		ig.logger.Debug("Downloaded item", "id", item.ID, "kind", item.Kind.String(), "path", path)
		return nil
	})
}

func (ig *InstaImpl) DownloadProfilePicture(ctx context.Context, profile *domain.Profile, dir string) (string, error) {
	if profile.AvatarURL == "" {
		return "", apperrors.New(apperrors.KindNotFound, fmt.Sprintf("profile %s has no picture", profile.Username))
	}

	path := filepath.Join(dir, profile.Username+"_profile.jpg")
	err := ig.do(ctx, "DownloadProfilePicture", func() error {
		return ig.fetchToFile(ctx, hdAvatarURL(profile.AvatarURL), path)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// visitLanding is the decoy request issued by the pacer.
func (ig *InstaImpl) visitLanding(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ig.headers.landing, nil)
	if err != nil {
		return err
	}
	ig.headers.apply(req)

	resp, err := ig.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, err = io.Copy(io.Discard, resp.Body)
	return err
}

func (ig *InstaImpl) fetchToFile(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindRemote, "build media request")
	}
	ig.headers.apply(req)

	resp, err := ig.http.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindRemote, "download media")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.New(apperrors.KindRemote, fmt.Sprintf("download media: unexpected status %d", resp.StatusCode))
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindStorage, "create media file")
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(path)
		return apperrors.Wrap(err, apperrors.KindRemote, "write media file")
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return apperrors.Wrap(err, apperrors.KindStorage, "close media file")
	}
	return nil
}

func itemFileName(item domain.MediaItem) string {
	ext := "jpg"
	if item.Kind == domain.MediaVideo {
		ext = "mp4"
	}
	return fmt.Sprintf("%s_UTC_%s.%s", item.TakenAt.UTC().Format(captureTimeLayout), item.ID, ext)
}

// hdAvatarURL asks the CDN for the large rendition of a thumbnail URL.
func hdAvatarURL(url string) string {
	return strings.Replace(url, "s150x150", "s1080x1080", 1)
}
