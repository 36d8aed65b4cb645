package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// NormalizePhone strips every rune that is not an ASCII digit. Submitters
// type numbers with spaces, dashes and a leading "+"; wa.me wants digits only.
// No length or country-code validation is done here.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds the plain wa.me deep link for a normalized phone number.
func Link(phone string) string {
	return baseURL + phone
}

// PrefilledLink appends text as the wa.me "text" query parameter.
// url.QueryEscape encodes spaces as "+", which WhatsApp renders literally,
// so spaces are forced to %20 to match encodeURIComponent output.
func PrefilledLink(phone, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return Link(phone) + "?text=" + encoded
}
