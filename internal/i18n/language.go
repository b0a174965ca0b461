package i18n

import (
	"fmt"
	"strings"
)

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

var Languages = []Language{English, Arabic}

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Arabic:
		return Arabic, nil
	default:
		return "", fmt.Errorf("i18n: unsupported language %q (want en or ar)", s)
	}
}

func (l Language) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

func (l Language) String() string { return string(l) }
