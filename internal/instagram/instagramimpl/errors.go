package instagramimpl

import (
	"errors"
	"strings"

	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
)

var (
	authMarkers     = []string{"login_required", "challenge_required", "checkpoint_required", "not logged in", "401"}
	notFoundMarkers = []string{"user not found", "not found", "404"}
	refusalMarkers  = []string{"not authorized", "private", "403", "400"}
)

// classify maps a goinsta failure onto the error taxonomy.
func classify(err error, message string) error {
	if err == nil {
		return nil
	}
	var classified *apperrors.Error
	if errors.As(err, &classified) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, authMarkers):
		return apperrors.Wrap(err, apperrors.KindAuth, message)
	case containsAny(msg, notFoundMarkers):
		return apperrors.Wrap(err, apperrors.KindNotFound, message)
	default:
		return apperrors.Wrap(err, apperrors.KindRemote, message)
	}
}

// classifyRefusal is classify for listings the platform may decline to show,
// such as the stories of a private account.
func classifyRefusal(err error, message string) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if !containsAny(msg, authMarkers) && containsAny(msg, refusalMarkers) {
		return apperrors.Wrap(err, apperrors.KindAccessDenied, message)
	}
	return classify(err, message)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
