package i18n

import (
	"context"
	"fmt"

	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Catalog resolves message keys for every supported language. English is
// the fallback for keys a language lacks.
type Catalog struct {
	uni *ut.UniversalTranslator
}

func NewCatalog() (*Catalog, error) {
	english := en.New()
	uni := ut.New(english, english, ar.New())

	for lang, msgs := range catalog {
		trans, found := uni.GetTranslator(lang.String())
		if !found {
			return nil, fmt.Errorf("i18n: no locale for %s", lang)
		}
		for key, text := range msgs {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("i18n: add %s/%s: %w", lang, key, err)
			}
		}
	}
	return &Catalog{uni: uni}, nil
}

// MustCatalog panics if the built-in messages fail to register.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// For binds the catalog to one language.
func (c *Catalog) For(lang Language) *Localizer {
	trans, _ := c.uni.GetTranslator(lang.String())
	fallback, _ := c.uni.GetTranslator(English.String())
	return &Localizer{lang: lang, trans: trans, fallback: fallback}
}

type Localizer struct {
	lang     Language
	trans    ut.Translator
	fallback ut.Translator
}

func (l *Localizer) Language() Language { return l.lang }

func (l *Localizer) Direction() Direction { return l.lang.Direction() }

// T resolves key, falling back to English and then to the key itself.
func (l *Localizer) T(key string, params ...string) string {
	if s, err := l.trans.T(key, params...); err == nil {
		return s
	}
	if s, err := l.fallback.T(key, params...); err == nil {
		return s
	}
	return key
}

// Number formats n with the locale's digits and separators.
func (l *Localizer) Number(n float64, decimals uint64) string {
	return l.trans.FmtNumber(n, decimals)
}

// Translate lets a Localizer report configuration loader errors.
func (l *Localizer) Translate(_ context.Context, key string, args ...interface{}) string {
	params := make([]string, len(args))
	for i, a := range args {
		params[i] = fmt.Sprint(a)
	}
	return l.T(key, params...)
}

// Translator is what message consumers need from a Localizer.
type Translator interface {
	T(key string, params ...string) string
}

var _ Translator = (*Localizer)(nil)
