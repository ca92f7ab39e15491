package kconfiglang

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrInvalidLanguage is returned by ParseLanguage for any code that is not one of
// Languages.
var ErrInvalidLanguage = errors.New("invalid language")

// Language is a pseudo-enum representing the language variants of a Kconfig file.
type Language string

const (
	// NOTE: this list must be kept in sync with Languages().

	Chinese Language = "zh"
	English Language = "en"
)

// Languages returns the supported languages, in the order they are presented to the
// user.
func Languages() []Language {
	return []Language{Chinese, English}
}

// ParseLanguage returns the Language corresponding to code. The comparison is
// case-insensitive ("ZH", "Zh" and "zh" are all Chinese) but otherwise exact: no
// trimming, no region subtags.
func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.ToLower(code))
	if !slices.Contains(Languages(), lang) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}
	return lang, nil
}

// Tag returns the BCP 47 tag of lang.
func (lang Language) Tag() language.Tag {
	return language.Make(string(lang))
}

// Name returns the English name of lang, for example "Chinese".
func (lang Language) Name() string {
	return display.English.Languages().Name(lang.Tag())
}

func (lang Language) String() string {
	return string(lang)
}

// usageHint returns the human explanation of the accepted codes:
// "'zh' for Chinese or 'en' for English".
func usageHint() string {
	hints := make([]string, 0, len(Languages()))
	for _, lang := range Languages() {
		hints = append(hints, fmt.Sprintf("'%s' for %s", lang, lang.Name()))
	}
	return strings.Join(hints, " or ")
}

// UsageChoices returns the accepted codes in the form "zh|en".
func UsageChoices() string {
	return joinCodes("|")
}

func joinCodes(sep string) string {
	codes := make([]string, 0, len(Languages()))
	for _, lang := range Languages() {
		codes = append(codes, string(lang))
	}
	return strings.Join(codes, sep)
}
