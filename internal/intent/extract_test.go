package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractOrderNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "canonical form", text: "track ORDER-123 please", want: "ORDER-123"},
		{name: "lower case prefix", text: "order-456", want: "ORDER-456"},
		{name: "prefix without dash", text: "what about ORDER789", want: "ORDER-789"},
		{name: "bare digits", text: "track 456", want: "ORDER-456"},
		{name: "long digit run", text: "status of 789456", want: "ORDER-789456"},
		{name: "too few digits", text: "order 12", want: ""},
		{name: "no digits", text: "where is my order", want: ""},
		{name: "empty text", text: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractOrderNumber(tc.text))
		})
	}
}

func TestExtractProductKeyword(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "headphones", text: "Are headphones in stock?", want: "headphone"},
		{name: "watch", text: "got a smart watch?", want: "watch"},
		{name: "laptop", text: "LAPTOP availability", want: "laptop"},
		// "smartphone" contains "phone", and "phone" is listed first.
		{name: "smartphone resolves to phone", text: "smartphone please", want: "phone"},
		{name: "no product", text: "do you sell toasters", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractProductKeyword(tc.text))
		})
	}
}
