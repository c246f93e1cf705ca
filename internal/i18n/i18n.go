// Package i18n loads the embedded message catalogs and translates UI strings.
//
// Catalogs live in locales/active.<lang>.toml. English is the default
// language and the fallback for keys missing from another catalog.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/desertthunder/playharmony/internal/shared"
)

//go:embed locales/*.toml
var locales embed.FS

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Localizer translates message IDs for one locale.
type Localizer struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// NewBundle parses every embedded catalog into a bundle.
func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to list message files: %w", err)
	}

	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(locales, path); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	return bundle, nil
}

// New creates a [Localizer] for locale, a BCP 47 tag such as "en" or "es-MX".
//
// An empty locale selects [DefaultLocale]. Well-formed tags without a catalog fall back to English.
func New(locale string) (*Localizer, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", shared.ErrInvalidConfig, locale, err)
	}

	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	_, index, _ := matcher.Match(tag)
	matched := bundle.LanguageTags()[index]

	return &Localizer{
		tag:       matched,
		localizer: goi18n.NewLocalizer(bundle, matched.String(), DefaultLocale),
	}, nil
}

// MustNew is [New] for locales known to be valid.
func MustNew(locale string) *Localizer {
	l, err := New(locale)
	if err != nil {
		panic(err)
	}
	return l
}

// Locale reports the catalog language in use.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// T translates id, filling the message template from data.
//
// A "Count" entry in data selects the plural form. Unknown IDs are returned as-is.
func (l *Localizer) T(id string, data ...map[string]any) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
		if count, ok := data[0]["Count"]; ok {
			cfg.PluralCount = count
		}
	}

	msg, err := l.localizer.Localize(cfg)
	if err != nil {
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) || msg == "" {
			return id
		}
	}
	return msg
}

// Supported lists the languages that have a catalog.
func Supported() []string {
	bundle, err := NewBundle()
	if err != nil {
		return []string{DefaultLocale}
	}

	tags := bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}
