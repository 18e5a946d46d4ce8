package logger

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

const mask = "****"

var cookiePattern = regexp.MustCompile(`(?i)(sessionid|csrftoken|ds_user_id)=[^;&\s]+`)

// Redact masks Instagram cookie values and any of the given secrets in s.
func Redact(s string, secrets []string) string {
	s = cookiePattern.ReplaceAllString(s, "${1}="+mask)
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		s = strings.ReplaceAll(s, secret, mask)
	}
	return s
}

func redactMiddleware(secrets []string) slogmulti.Middleware {
	return slogmulti.NewHandleInlineMiddleware(
		func(ctx context.Context, record slog.Record, next func(context.Context, slog.Record) error) error {
			clean := slog.NewRecord(record.Time, record.Level, Redact(record.Message, secrets), record.PC)
			record.Attrs(func(a slog.Attr) bool {
				clean.AddAttrs(redactAttr(a, secrets))
				return true
			})
			return next(ctx, clean)
		},
	)
}

func redactAttr(a slog.Attr, secrets []string) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return slog.String(a.Key, Redact(v.String(), secrets))
	case slog.KindGroup:
		group := v.Group()
		out := make([]any, 0, len(group))
		for _, ga := range group {
			out = append(out, redactAttr(ga, secrets))
		}
		return slog.Group(a.Key, out...)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return slog.String(a.Key, Redact(err.Error(), secrets))
		}
	}
	return a
}
