package intent

import (
	"regexp"
	"strings"
)

var orderNumberRe = regexp.MustCompile(`(?i)(ORDER-?)?(\d{3,})`)

// productKeywords is scanned in order; the first keyword contained in the
// utterance wins.
var productKeywords = []string{"headphone", "watch", "laptop", "phone", "smartphone"}

// ExtractOrderNumber pulls an order identifier out of free text and
// normalizes it to the canonical ORDER-<digits> form. Returns "" when the
// text contains no run of three or more digits.
func ExtractOrderNumber(text string) string {
	m := orderNumberRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return "ORDER-" + m[2]
}

// ExtractProductKeyword finds the first known product noun mentioned in the
// text, or "" when none matches. Best effort: a miss means the caller asks
// the user to clarify.
func ExtractProductKeyword(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range productKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}
