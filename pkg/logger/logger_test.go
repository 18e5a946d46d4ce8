package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		secrets []string
		want    string
	}{
		{
			name: "session cookie",
			in:   "cookie: sessionid=abc123; csrftoken=zzz; mid=1",
			want: "cookie: sessionid=****; csrftoken=****; mid=1",
		},
		{
			name:    "configured secret",
			in:      "login with hunter2 failed",
			secrets: []string{"hunter2"},
			want:    "login with **** failed",
		},
		{
			name:    "empty secret is ignored",
			in:      "nothing to hide",
			secrets: []string{""},
			want:    "nothing to hide",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(tt.in, tt.secrets))
		})
	}
}

func TestLoggerMasksMessagesAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Level: "debug", Secrets: []string{"hunter2"}, Output: &buf})

	log.Info("request sessionid=topsecret sent", "password", "hunter2", "error", errors.New("bad hunter2"))

	out := buf.String()
	require.NotEmpty(t, out)
	assert.NotContains(t, out, "topsecret")
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "sessionid=****")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.WithComponent("staging").Info("created")

	assert.Contains(t, buf.String(), `"component":"staging"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Level: "warn", Output: &buf})

	log.Info("quiet")
	assert.Empty(t, buf.String())

	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}
