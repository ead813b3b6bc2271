package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/arbiter/internal/domain/config"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// MockPreferenceStore is a mock implementation of PreferenceStore
type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) Load(ctx context.Context) (*config.Preferences, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Preferences), args.Error(1)
}

func (m *MockPreferenceStore) Save(ctx context.Context, prefs *config.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

type fixedScheme struct {
	dark, known bool
}

func (s fixedScheme) PrefersDark() (bool, bool) { return s.dark, s.known }

func darkPrefs(dark bool) *config.Preferences {
	return &config.Preferences{DarkMode: &dark}
}

func TestThemeProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("stored preference wins over the terminal", func(t *testing.T) {
		store := new(MockPreferenceStore)
		store.On("Load", ctx).Return(darkPrefs(false), nil)

		p := usecase.NewThemeProvider(store, fixedScheme{dark: true, known: true})
		require.NoError(t, p.Init(ctx))
		assert.False(t, p.IsDark())
		assert.Equal(t, config.ThemeLight, p.Theme())
		store.AssertExpectations(t)
	})

	t.Run("terminal scheme is the fallback", func(t *testing.T) {
		store := new(MockPreferenceStore)
		store.On("Load", ctx).Return(config.DefaultPreferences(), nil)

		p := usecase.NewThemeProvider(store, fixedScheme{dark: true, known: true})
		require.NoError(t, p.Init(ctx))
		assert.True(t, p.IsDark())
	})

	t.Run("light when nothing is known", func(t *testing.T) {
		store := new(MockPreferenceStore)
		store.On("Load", ctx).Return(config.DefaultPreferences(), nil)

		p := usecase.NewThemeProvider(store, fixedScheme{})
		require.NoError(t, p.Init(ctx))
		assert.False(t, p.IsDark())
	})

	t.Run("toggle persists the new value", func(t *testing.T) {
		store := new(MockPreferenceStore)
		store.On("Load", ctx).Return(darkPrefs(false), nil)
		store.On("Save", ctx, darkPrefs(true)).Return(nil).Once()
		store.On("Save", ctx, darkPrefs(false)).Return(nil).Once()

		p := usecase.NewThemeProvider(store, nil)
		require.NoError(t, p.Init(ctx))

		dark, err := p.Toggle(ctx)
		require.NoError(t, err)
		assert.True(t, dark)
		assert.Equal(t, config.ThemeDark, p.Theme())

		dark, err = p.Toggle(ctx)
		require.NoError(t, err)
		assert.False(t, dark)
		store.AssertExpectations(t)
	})

	t.Run("load and save errors surface", func(t *testing.T) {
		store := new(MockPreferenceStore)
		store.On("Load", ctx).Return(nil, errors.New("permission denied"))
		store.On("Save", ctx, darkPrefs(true)).Return(errors.New("disk full"))

		p := usecase.NewThemeProvider(store, nil)
		assert.ErrorContains(t, p.Init(ctx), "failed to load preferences")

		err := p.Set(ctx, true)
		assert.ErrorContains(t, err, "disk full")
		assert.True(t, p.IsDark(), "the in-memory choice still applies")
	})
}
