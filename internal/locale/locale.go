// Package locale detects the host locale and reduces locale names to
// base language codes.
package locale

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// FallbackLanguage is used for the C and POSIX locales.
const FallbackLanguage = "en"

// envOrder is the lookup order used by libc for message catalogs.
var envOrder = []string{"LC_ALL", "LC_CTYPE", "LANG", "LANGUAGE"}

// System reads the locale from the process environment.
type System struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// DefaultLocale returns the first locale set in LC_ALL, LC_CTYPE, LANG or
// LANGUAGE, or an empty string.
func (s System) DefaultLocale() string {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	for _, name := range envOrder {
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			continue
		}
		if name == "LANGUAGE" {
			// LANGUAGE is a colon separated priority list.
			value, _, _ = strings.Cut(value, ":")
		}
		return value
	}
	return ""
}

// LanguageCode implements options.Locale.
func (System) LanguageCode(locale string) (string, error) {
	return LanguageCode(locale)
}

// LanguageCode reduces a POSIX locale name such as "pt_BR.UTF-8" or
// "sr_RS@latin" to its base language code ("pt", "sr").
func LanguageCode(locale string) (string, error) {
	name := strings.TrimSpace(locale)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}

	switch name {
	case "", "C", "POSIX":
		return FallbackLanguage, nil
	}

	tag, err := language.Raw.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("parsing locale %q: %w", locale, err)
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return "", fmt.Errorf("locale %q has no language", locale)
	}
	return base.String(), nil
}
