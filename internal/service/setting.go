package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/pkg/cache"
	"tasklog.dev/backend/internal/repo"
)

const settingsCacheTTL = time.Hour

type Setting struct {
	DB          *bun.DB
	SettingRepo *repo.Setting

	cache *cache.Singular[model.Settings]
}

func NewSetting(db *bun.DB, settingRepo *repo.Setting) *Setting {
	return &Setting{
		DB:          db,
		SettingRepo: settingRepo,
		cache:       cache.NewSingular[model.Settings]("settings"),
	}
}

// Cache: (singular) settings, 1 hr, dropped on update
func (s *Setting) GetSettings(ctx context.Context) (*model.Settings, error) {
	settings, err := s.cache.MutexGetSet(func() (model.Settings, error) {
		return s.load(ctx)
	}, settingsCacheTTL)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Setting) load(ctx context.Context) (model.Settings, error) {
	settings := model.Settings{
		Hotkey:       model.DefaultHotkey,
		RunAtStartup: false,
	}

	rows, err := s.SettingRepo.GetSettings(ctx)
	if err != nil {
		return settings, err
	}

	for _, row := range rows {
		if row.Value == nil {
			continue
		}
		switch row.Key {
		case model.SettingKeyHotkey:
			settings.Hotkey = *row.Value
		case model.SettingKeyRunAtStartup:
			settings.RunAtStartup = parseBool(*row.Value)
		}
	}
	return settings, nil
}

// UpdateSettings saves the fields present in req and returns the resulting settings.
// The hotkey is stored trimmed and lower-cased.
func (s *Setting) UpdateSettings(ctx context.Context, req *types.UpdateSettingsRequest) (*model.Settings, error) {
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		settings := s.SettingRepo.Tx(tx)
		if req.Hotkey.Valid {
			hotkey := strings.ToLower(strings.TrimSpace(req.Hotkey.String))
			if err := settings.UpsertSetting(ctx, model.SettingKeyHotkey, hotkey); err != nil {
				return err
			}
		}
		if req.RunAtStartup.Valid {
			if err := settings.UpsertSetting(ctx, model.SettingKeyRunAtStartup, strconv.FormatBool(req.RunAtStartup.Bool)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.cache.Delete()
		return nil, err
	}

	settings, err := s.load(ctx)
	if err != nil {
		s.cache.Delete()
		return nil, err
	}
	s.cache.Set(settings, settingsCacheTTL)
	return &settings, nil
}

// Hotkey returns the configured global hotkey. It never fails: any error or an empty
// value yields model.DefaultHotkey.
func (s *Setting) Hotkey(ctx context.Context) string {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "settings.hotkey.fallback").
			Msg("failed to read hotkey setting, using default")
		return model.DefaultHotkey
	}
	if settings.Hotkey == "" {
		return model.DefaultHotkey
	}
	return settings.Hotkey
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
