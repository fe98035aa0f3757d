package menu

import (
	"github.com/atomicstack/gradebook/internal/i18n"
	"github.com/atomicstack/gradebook/internal/logging"
)

// LanguageAction opens the language picker from the main menu.
func LanguageAction(c *Context) (bool, error) {
	return false, RunLanguages(c)
}

// RunLanguages switches the interface language and stores the choice.
func RunLanguages(c *Context) error {
	m := newMenu(c, "language", i18n.Languages(), func(entries []i18n.Language, index int) bool {
		code := entries[index].Code
		if err := c.Catalog.SetLanguage(code); err != nil {
			logging.Error(err)
			return false
		}
		if c.Store != nil {
			if err := SaveSettings(c.Store, Settings{Language: code}); err != nil {
				logging.Error(err)
			}
		}
		return true
	})
	m.DisplayTitle = func([]i18n.Language) {
		localize(c, m)
		writeTitle(c, c.t("Language"))
	}
	m.Label = func(l i18n.Language) string {
		if l.Code == c.Catalog.Language() {
			return l.Name + " *"
		}
		return l.Name
	}
	return finish(m.Show(), nil)
}
