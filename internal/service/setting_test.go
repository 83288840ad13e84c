package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/model/types"
)

func TestSettingsDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settings, err := f.Setting.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultHotkey, settings.Hotkey)
	assert.False(t, settings.RunAtStartup)
	assert.Equal(t, model.DefaultHotkey, f.Setting.Hotkey(ctx))
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settings, err := f.Setting.UpdateSettings(ctx, &types.UpdateSettingsRequest{
		Hotkey: null.StringFrom("  Ctrl+Shift+K "),
	})
	require.NoError(t, err)
	assert.Equal(t, "ctrl+shift+k", settings.Hotkey)
	assert.False(t, settings.RunAtStartup)

	settings, err = f.Setting.UpdateSettings(ctx, &types.UpdateSettingsRequest{
		RunAtStartup: null.BoolFrom(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "ctrl+shift+k", settings.Hotkey)
	assert.True(t, settings.RunAtStartup)

	got, err := f.Setting.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
	assert.Equal(t, "ctrl+shift+k", f.Setting.Hotkey(ctx))

	settings, err = f.Setting.UpdateSettings(ctx, &types.UpdateSettingsRequest{
		RunAtStartup: null.BoolFrom(false),
	})
	require.NoError(t, err)
	assert.False(t, settings.RunAtStartup)
}

func TestHotkeyFallsBackOnEmptyValue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settings, err := f.Setting.UpdateSettings(ctx, &types.UpdateSettingsRequest{
		Hotkey: null.StringFrom("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "", settings.Hotkey)
	assert.Equal(t, model.DefaultHotkey, f.Setting.Hotkey(ctx))
}

func TestHotkeyFallsBackOnStoreFailure(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, model.DefaultHotkey, f.Setting.Hotkey(ctx))
}
