package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/repositories"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
)

const table = "selections"

type PgxRepository struct {
	pool   *pgxpool.Pool
	ttl    time.Duration
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, cfg *config.Config, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		ttl:    cfg.Bot.SelectionTTL,
		logger: logger.WithComponent("selection"),
	}
}

func (r *PgxRepository) Get(ctx context.Context, userID int64) (*Selection, error) {
	query, args, err := getQuery(userID, r.cutoff())
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	s := Selection{}
	err = r.pool.QueryRow(ctx, query, args...).Scan(&s.UserID, &s.Username, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.KindStorage, "get selection")
	}

	return &s, nil
}

func (r *PgxRepository) Set(ctx context.Context, userID int64, username string) error {
	query, args, err := upsertQuery(userID, username, time.Now())
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, apperrors.KindStorage, fmt.Sprintf("set selection for user %d", userID))
	}
	return nil
}

func (r *PgxRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if r.ttl <= 0 {
		return 0, nil
	}

	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"updated_at": r.cutoff()}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindStorage, "delete expired selections")
	}
	return tag.RowsAffected(), nil
}

// cutoff is the zero time when selections never expire.
func (r *PgxRepository) cutoff() time.Time {
	if r.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(-r.ttl)
}

func getQuery(userID int64, cutoff time.Time) (string, []interface{}, error) {
	return repositories.SqBuilder.
		Select("user_id", "username", "updated_at").
		From(table).
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.GtOrEq{"updated_at": cutoff},
		}).
		ToSql()
}

func upsertQuery(userID int64, username string, at time.Time) (string, []interface{}, error) {
	return repositories.SqBuilder.
		Insert(table).
		Columns("user_id", "username", "updated_at").
		Values(userID, username, at).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at").
		ToSql()
}

var _ Repository = (*PgxRepository)(nil)
