package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// ColorSchemeAdapter reads the terminal colour scheme from COLORFGBG,
// which rxvt, Konsole, iTerm2 and most tmux setups export as "fg;bg"
// or "fg;default;bg".
type ColorSchemeAdapter struct {
	lookup func(string) (string, bool)
}

// NewColorSchemeAdapter creates a new ColorSchemeAdapter
func NewColorSchemeAdapter() *ColorSchemeAdapter {
	return &ColorSchemeAdapter{lookup: os.LookupEnv}
}

// PrefersDark reports whether the background colour is one of the dark
// ANSI colours. known is false when the variable is missing or malformed.
func (a *ColorSchemeAdapter) PrefersDark() (dark bool, known bool) {
	value, ok := a.lookup("COLORFGBG")
	if !ok || value == "" {
		return false, false
	}

	parts := strings.Split(value, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || bg < 0 || bg > 15 {
		return false, false
	}
	// 7 (light grey) and 9-15 are light backgrounds
	return bg < 7 || bg == 8, true
}

var _ usecase.SystemTheme = (*ColorSchemeAdapter)(nil)
