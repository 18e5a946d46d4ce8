package instagramimpl

import (
	"errors"
	"testing"

	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"login required", errors.New("login_required"), apperrors.KindAuth},
		{"unknown user", errors.New("User not found"), apperrors.KindNotFound},
		{"timeout", errors.New("i/o timeout"), apperrors.KindRemote},
		{"already classified", apperrors.New(apperrors.KindStorage, "disk"), apperrors.KindStorage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(classify(tt.err, "op")))
		})
	}
	assert.NoError(t, classify(nil, "op"))
}

func TestClassifyRefusal(t *testing.T) {
	assert.True(t, apperrors.IsAccessDenied(classifyRefusal(errors.New("Request Status Code 400: Bad Request"), "stories")))
	assert.True(t, apperrors.IsAccessDenied(classifyRefusal(errors.New("403 forbidden"), "stories")))
	assert.True(t, apperrors.IsAccessDenied(classifyRefusal(errors.New("Not authorized to view user"), "stories")))
	assert.True(t, apperrors.IsAuth(classifyRefusal(errors.New("login_required"), "stories")))
	assert.True(t, apperrors.IsRemote(classifyRefusal(errors.New("connection reset"), "stories")))
}

func TestCredentialsRejected(t *testing.T) {
	assert.True(t, credentialsRejected(errors.New("bad_password: the password you entered is incorrect")))
	assert.True(t, credentialsRejected(errors.New("challenge_required")))
	assert.False(t, credentialsRejected(errors.New("dial tcp: connection refused")))
}

func TestParseHighlightID(t *testing.T) {
	id, err := parseHighlightID("highlight:17895458123")
	require.NoError(t, err)
	assert.Equal(t, int64(17895458123), id)

	id, err = parseHighlightID(float64(12))
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = parseHighlightID("highlight:abc")
	assert.Error(t, err)

	_, err = parseHighlightID(nil)
	assert.Error(t, err)
}
