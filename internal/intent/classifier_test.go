package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "track keyword", text: "Track my package please", want: TrackOrder},
		{name: "order keyword", text: "where is my ORDER-123", want: TrackOrder},
		{name: "stock keyword", text: "is this in stock?", want: CheckStock},
		{name: "have keyword", text: "do you have laptops", want: CheckStock},
		{name: "shipping keyword", text: "shipping options", want: ShippingInfo},
		{name: "delivery keyword", text: "delivery time to Canada", want: ShippingInfo},
		{name: "refund keyword", text: "I want a refund", want: ReturnsInfo},
		{name: "exchange keyword", text: "can I exchange this for a bigger size", want: ReturnsInfo},
		{name: "contact keyword", text: "contact a human", want: ContactInfo},
		{name: "call keyword", text: "can I call you", want: ContactInfo},
		{name: "greeting", text: "hey there", want: Greeting},
		{name: "hi alone", text: "Hi!", want: Greeting},
		{name: "no keyword", text: "xyzzy", want: Fallback},
		{name: "empty utterance", text: "", want: Fallback},
		{name: "upper case utterance", text: "TRACK IT", want: TrackOrder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}

// Keyword groups overlap, so rule order is load-bearing: the earlier rule
// must win every tie.
func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "tracking beats stock", text: "track stock status", want: TrackOrder},
		{name: "stock beats shipping", text: "available for delivery?", want: CheckStock},
		{name: "shipping beats returns", text: "shipping for a return", want: ShippingInfo},
		{name: "returns beats contact", text: "refund support", want: ReturnsInfo},
		{name: "contact beats greeting", text: "hello, I need help", want: ContactInfo},
		// "shipping" contains the substring "hi" but must never greet.
		{name: "greeting never shadows shipping", text: "shipping", want: ShippingInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}
