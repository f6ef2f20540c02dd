package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/yourusername/mediaform/internal/domain"
)

// ThemeManager owns the persisted theme flag. The preference is read once
// at construction and written back on every change. It is independent of
// the submission state machine.
type ThemeManager struct {
	prefs  domain.PreferenceRepository
	logger *zap.Logger

	mu      sync.Mutex
	current domain.Theme
}

// NewThemeManager reads the stored preference, defaulting to dark when the
// flag is absent or unreadable
func NewThemeManager(prefs domain.PreferenceRepository, logger *zap.Logger) *ThemeManager {
	current := domain.ThemeDark

	value, err := prefs.Get(domain.PreferenceKeyTheme)
	if err != nil {
		logger.Warn("Failed to read theme preference, using default", zap.Error(err))
	} else if stored := domain.Theme(value); stored.Valid() {
		current = stored
	}

	return &ThemeManager{
		prefs:   prefs,
		logger:  logger,
		current: current,
	}
}

// Current returns the active theme
func (tm *ThemeManager) Current() domain.Theme {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.current
}

// Toggle flips the theme and writes it back immediately
func (tm *ThemeManager) Toggle() (domain.Theme, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.setLocked(tm.current.Toggled())
}

// Set switches to the given theme and persists it
func (tm *ThemeManager) Set(theme domain.Theme) (domain.Theme, error) {
	if !theme.Valid() {
		return tm.Current(), fmt.Errorf("invalid theme: %q", theme)
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.setLocked(theme)
}

func (tm *ThemeManager) setLocked(theme domain.Theme) (domain.Theme, error) {
	if err := tm.prefs.Set(domain.PreferenceKeyTheme, string(theme)); err != nil {
		return tm.current, fmt.Errorf("failed to persist theme: %w", err)
	}
	tm.current = theme
	tm.logger.Debug("Theme changed", zap.String("theme", string(theme)))
	return tm.current, nil
}
