// Package i18n translates menu text. Message keys are the English format
// strings, so an untranslated key still prints sensibly.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

var supported = []language.Tag{language.English, language.German, language.French}

var matcher = language.NewMatcher(supported)

// Language is one selectable UI language.
type Language struct {
	Tag  language.Tag
	Code string
	// Name is the language's name in itself, e.g. "Deutsch".
	Name string
}

// Languages lists the supported languages in menu order.
func Languages() []Language {
	out := make([]Language, len(supported))
	for i, tag := range supported {
		out[i] = Language{Tag: tag, Code: tag.String(), Name: display.Self.Name(tag)}
	}
	return out
}

// Supported reports whether code names a supported language.
func Supported(code string) bool {
	_, err := match(code)
	return err == nil
}

func match(code string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", code, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported language %q", code)
	}
	return supported[idx], nil
}

// Catalog formats messages in the active language.
type Catalog struct {
	builder *catalog.Builder
	tag     language.Tag
	printer *message.Printer
}

// New builds the catalog and activates code.
func New(code string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, m := range messages {
		for tag, text := range map[language.Tag]string{
			language.English: m.key,
			language.German:  m.de,
			language.French:  m.fr,
		} {
			if text == "" {
				continue
			}
			if err := b.SetString(tag, m.key, text); err != nil {
				return nil, fmt.Errorf("register %q: %w", m.key, err)
			}
		}
	}
	for _, m := range counts {
		for tag, forms := range map[language.Tag][2]string{
			language.English: m.en,
			language.German:  m.de,
			language.French:  m.fr,
		} {
			msg := plural.Selectf(1, "%d", plural.One, forms[0], plural.Other, forms[1])
			if err := b.Set(tag, m.key, msg); err != nil {
				return nil, fmt.Errorf("register %q: %w", m.key, err)
			}
		}
	}
	c := &Catalog{builder: b}
	if err := c.SetLanguage(code); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLanguage switches the active language.
func (c *Catalog) SetLanguage(code string) error {
	tag, err := match(code)
	if err != nil {
		return err
	}
	c.tag = tag
	c.printer = message.NewPrinter(tag, message.Catalog(c.builder))
	return nil
}

// Language returns the active language code.
func (c *Catalog) Language() string { return c.tag.String() }

// T formats key in the active language.
func (c *Catalog) T(key string, args ...interface{}) string {
	return c.printer.Sprintf(key, args...)
}

// Decimal formats v with at most digits fraction digits and the local
// decimal separator.
func (c *Catalog) Decimal(v float64, digits int) string {
	return c.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(digits)))
}
