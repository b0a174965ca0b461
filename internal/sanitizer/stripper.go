package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

// StripHTML removes every tag from s. Entities the policy escapes are turned
// back into text so names like "Tom & Sons" survive unchanged.
func (hs *HTMLStripper) StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(hs.bm.Sanitize(s)))
}

// StripAll strips each element of ss into a new slice.
func StripAll(s HTMLStripperer, ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, v := range ss {
		out[i] = s.StripHTML(v)
	}
	return out
}
