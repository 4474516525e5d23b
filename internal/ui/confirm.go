package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Prompt asks the user questions.
type Prompt struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewPrompt creates a Prompt backed by the given theme and headless manager.
func NewPrompt(theme *Theme, hm *HeadlessManager) *Prompt {
	return &Prompt{theme: theme, headless: hm}
}

// Confirm asks a yes/no question. In headless mode no question is shown and
// defaultVal is returned.
func (p *Prompt) Confirm(title string, defaultVal bool) (bool, error) {
	if p.headless.IsHeadless() {
		return defaultVal, nil
	}
	return p.confirmInteractive(title, defaultVal)
}

func (p *Prompt) confirmInteractive(title string, defaultVal bool) (bool, error) {
	answer := defaultVal
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)

	form := huh.NewForm(huh.NewGroup(field)).WithTheme(p.huhTheme())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return answer, nil
}

func (p *Prompt) huhTheme() *huh.Theme {
	if p.theme.NoColor {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}
