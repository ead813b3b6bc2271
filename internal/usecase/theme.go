package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/trebuchet-org/arbiter/internal/domain/config"
)

// ThemeProvider holds the dark/light preference for the lifetime of the app.
// It is read once at startup and written on every change.
type ThemeProvider struct {
	store  PreferenceStore
	system SystemTheme

	mu    sync.Mutex
	dark  bool
	ready bool
}

// NewThemeProvider creates a new ThemeProvider
func NewThemeProvider(store PreferenceStore, system SystemTheme) *ThemeProvider {
	return &ThemeProvider{store: store, system: system}
}

// Init loads the stored preference, falling back to the terminal's scheme
func (p *ThemeProvider) Init(ctx context.Context) error {
	prefs, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case prefs.DarkMode != nil:
		p.dark = *prefs.DarkMode
	case p.system != nil:
		if dark, known := p.system.PrefersDark(); known {
			p.dark = dark
		}
	}
	p.ready = true
	return nil
}

// IsDark reports the active theme
func (p *ThemeProvider) IsDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dark
}

// Theme returns the active theme name
func (p *ThemeProvider) Theme() config.Theme {
	return config.ThemeFor(p.IsDark())
}

// Set stores an explicit choice
func (p *ThemeProvider) Set(ctx context.Context, dark bool) error {
	p.mu.Lock()
	p.dark = dark
	p.ready = true
	p.mu.Unlock()

	if err := p.store.Save(ctx, &config.Preferences{DarkMode: &dark}); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Toggle flips the theme and stores the result
func (p *ThemeProvider) Toggle(ctx context.Context) (bool, error) {
	dark := !p.IsDark()
	return dark, p.Set(ctx, dark)
}
