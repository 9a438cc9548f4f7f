package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en_US", "en"},
		{"en_US.UTF-8", "en"},
		{"pt_BR", "pt"},
		{"de_DE@euro", "de"},
		{"sr_RS@latin", "sr"},
		{"fil_PH", "fil"},
		{"fr", "fr"},
		{"zh-Hant-TW", "zh"},
		{"C", "en"},
		{"C.UTF-8", "en"},
		{"POSIX", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := LanguageCode(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageCodeInvalid(t *testing.T) {
	for _, in := range []string{"12345", "e", "en_US_!!"} {
		_, err := LanguageCode(in)
		assert.Error(t, err, in)
	}
}

func TestDefaultLocale(t *testing.T) {
	env := func(values map[string]string) func(string) string {
		return func(name string) string { return values[name] }
	}

	t.Run("LC_ALL wins", func(t *testing.T) {
		s := System{Getenv: env(map[string]string{"LC_ALL": "de_DE.UTF-8", "LANG": "en_US.UTF-8"})}
		assert.Equal(t, "de_DE.UTF-8", s.DefaultLocale())
	})

	t.Run("LANG", func(t *testing.T) {
		s := System{Getenv: env(map[string]string{"LANG": "pt_BR.UTF-8"})}
		assert.Equal(t, "pt_BR.UTF-8", s.DefaultLocale())
	})

	t.Run("LANGUAGE list", func(t *testing.T) {
		s := System{Getenv: env(map[string]string{"LANGUAGE": "fr_FR:en_US"})}
		assert.Equal(t, "fr_FR", s.DefaultLocale())
	})

	t.Run("unset", func(t *testing.T) {
		s := System{Getenv: env(nil)}
		assert.Equal(t, "", s.DefaultLocale())
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("LC_ALL", "es_ES.UTF-8")
		assert.Equal(t, "es_ES.UTF-8", System{}.DefaultLocale())
	})
}
