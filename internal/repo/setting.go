package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/repo/selector"
)

type Setting struct {
	db  bun.IDB
	sel selector.S[model.Setting]
}

func NewSetting(db *bun.DB) *Setting {
	return newSetting(db)
}

func newSetting(db bun.IDB) *Setting {
	return &Setting{db: db, sel: selector.New[model.Setting](db)}
}

func (r *Setting) Tx(tx bun.IDB) *Setting {
	return newSetting(tx)
}

func (r *Setting) GetSettings(ctx context.Context) ([]*model.Setting, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("key ASC")
	})
}

func (r *Setting) UpsertSetting(ctx context.Context, key, value string) error {
	setting := &model.Setting{Key: key, Value: &value}
	_, err := r.db.NewInsert().
		Model(setting).
		On(`CONFLICT ("key") DO UPDATE`).
		Set(`"value" = EXCLUDED."value"`).
		Exec(ctx)
	return errors.Wrapf(err, "failed to save setting %s", key)
}
