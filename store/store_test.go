package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FitBuddyGo/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSettingsDefaultsWhenAbsent(t *testing.T) {
	s := newTestStore(t)
	// 本地状态缺失不是错误，直接给默认值
	assert.Equal(t, models.DefaultSettings(), s.Settings())
}

func TestSettingsRoundtrip(t *testing.T) {
	s := newTestStore(t)

	want := models.Settings{
		Language: models.LanguageZH,
		Theme:    models.ThemeDark,
		Unit:     models.UnitImperial,
	}
	require.NoError(t, s.SaveSettings(want))
	assert.Equal(t, want, s.Settings())

	// 重新打开后仍然读得到
	reopened, err := Open(s.BasePath())
	require.NoError(t, err)
	assert.Equal(t, want, reopened.Settings())
}

func TestSettingsInvalidValuesFallBack(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveSettings(models.Settings{
		Language: "fr",
		Theme:    "neon",
		Unit:     "stone",
	}))
	assert.Equal(t, models.DefaultSettings(), s.Settings())
}

func TestIdentityLifecycle(t *testing.T) {
	s := newTestStore(t)

	// 未登录
	_, ok := s.Identity()
	assert.False(t, ok)

	user := &models.UserIdentity{ID: 7, Email: "a@b.c", Username: "alice"}
	require.NoError(t, s.SaveIdentity(user))

	got, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, user, got)

	require.NoError(t, s.ClearIdentity())
	_, ok = s.Identity()
	assert.False(t, ok)

	// 重复清除不报错
	require.NoError(t, s.ClearIdentity())
}

func TestSaveIdentityNil(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SaveIdentity(nil))
}
