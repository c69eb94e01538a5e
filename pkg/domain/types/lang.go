package types

import "fmt"

// Lang identifies a supported UI locale
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// AllLangs returns all supported locales
func AllLangs() []Lang {
	return []Lang{
		LangEnglish,
		LangArabic,
	}
}

// IsValid checks if the locale is supported
func (l Lang) IsValid() bool {
	switch l {
	case LangEnglish,
		LangArabic:
		return true
	default:
		return false
	}
}

// RTL reports whether the locale is written right-to-left
func (l Lang) RTL() bool {
	return l == LangArabic
}

// String returns the string representation of the locale
func (l Lang) String() string {
	return string(l)
}

// ParseLang parses a string into a Lang
func ParseLang(s string) (Lang, error) {
	lang := Lang(s)
	if !lang.IsValid() {
		return "", fmt.Errorf("invalid language: %s", s)
	}
	return lang, nil
}
