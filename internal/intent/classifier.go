package intent

import "strings"

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	TrackOrder   Intent = "track_order"
	CheckStock   Intent = "check_stock"
	ShippingInfo Intent = "shipping_info"
	ReturnsInfo  Intent = "returns_info"
	ContactInfo  Intent = "contact_info"
	Greeting     Intent = "greeting"
	Fallback     Intent = "fallback"
)

// rules are evaluated in order and the first keyword hit wins. The order is a
// contract: keyword groups overlap (e.g. "support" appears in both greeting
// help text and contact queries), so earlier rules must shadow later ones.
var rules = []struct {
	intent   Intent
	keywords []string
}{
	{TrackOrder, []string{"track", "order", "status"}},
	{CheckStock, []string{"stock", "available", "have"}},
	{ShippingInfo, []string{"shipping", "delivery", "ship"}},
	{ReturnsInfo, []string{"return", "refund", "exchange"}},
	{ContactInfo, []string{"contact", "support", "help", "call"}},
	{Greeting, []string{"hello", "hi", "hey"}},
}

// Classify maps an utterance to one intent using substring keyword matching.
// Unmatched utterances fall through to Fallback.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent
			}
		}
	}
	return Fallback
}
