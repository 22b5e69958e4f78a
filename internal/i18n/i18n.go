// Package i18n provides the user-facing strings in Ukrainian and English.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator picks a locale per request from Accept-Language.
type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
}

var supported = []language.Tag{language.Ukrainian, language.English}

// New builds a Translator whose fallback is defaultLocale ("uk" or "en").
func New(defaultLocale string) (*Translator, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}
	base, _ := fallback.Base()

	var fb language.Tag
	for _, tag := range supported {
		if b, _ := tag.Base(); b == base {
			fb = tag
		}
	}
	if fb == language.Und {
		return nil, fmt.Errorf("unsupported default locale %q", defaultLocale)
	}

	b := catalog.NewBuilder(catalog.Fallback(fb))
	for tag, entries := range messages {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s/%s: %w", tag, key, err)
			}
		}
	}

	// The matcher prefers the first tag when nothing matches, so the
	// fallback goes first.
	tags := []language.Tag{fb}
	for _, tag := range supported {
		if tag != fb {
			tags = append(tags, tag)
		}
	}

	return &Translator{
		catalog:  b,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
		fallback: fb,
	}, nil
}

// Localizer formats messages for one request.
type Localizer struct {
	printer *message.Printer
	lang    string
}

// For returns the Localizer matching an Accept-Language header value.
func (t *Translator) For(acceptLanguage string) *Localizer {
	tag := t.fallback
	if prefs, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(prefs) > 0 {
		// idx indexes t.tags; the returned tag may carry extensions the
		// catalog does not know about.
		_, idx, conf := t.matcher.Match(prefs...)
		if conf != language.No && idx >= 0 && idx < len(t.tags) {
			tag = t.tags[idx]
		}
	}

	base, _ := tag.Base()
	return &Localizer{
		printer: message.NewPrinter(tag, message.Catalog(t.catalog)),
		lang:    base.String(),
	}
}

// T formats the message stored under key.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Lang is the two-letter language code, for the html lang attribute.
func (l *Localizer) Lang() string {
	return l.lang
}
