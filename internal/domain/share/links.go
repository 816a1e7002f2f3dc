// Package share builds the deep links used to hand a composed message to the
// customer's mail client or to WhatsApp.
package share

import (
	"net/url"
	"strings"
	"unicode"

	"warranty/internal/domain/message"
)

const (
	// countryCode is the Malaysian international prefix used for WhatsApp numbers.
	countryCode = "60"
	// trunkPrefix is the leading digit of a locally dialled number.
	trunkPrefix = "0"

	whatsAppBaseURL = "https://wa.me/"
)

// Channel names a share channel.
type Channel string

const (
	// ChannelEmail opens the mail client with a mailto link.
	ChannelEmail Channel = "email"
	// ChannelWhatsApp opens a wa.me chat link.
	ChannelWhatsApp Channel = "whatsapp"
)

// String returns the string representation of the Channel.
func (c Channel) String() string {
	return string(c)
}

// Channels selects which share channels to invoke.
type Channels struct {
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

// Any reports whether at least one channel is selected.
func (c Channels) Any() bool {
	return c.Email || c.WhatsApp
}

// Links holds the built targets. A field is empty when its channel was not selected.
type Links struct {
	Email    string `json:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// componentUnescaper turns query escaping into URI component escaping: spaces
// become %20 and the marks !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s the way browsers encode a URI component.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// EmailLink builds mailto:<address>?subject=<subject>&body=<body>.
func EmailLink(address, subject, body string) string {
	return "mailto:" + strings.TrimSpace(address) +
		"?subject=" + EncodeComponent(subject) +
		"&body=" + EncodeComponent(body)
}

// NormalizePhone keeps the digits of phone and rewrites them into the
// international form: a number dialled with the trunk "0" gets a "6" in front
// (0123 becomes 60123), and "60" is prepended when still missing.
func NormalizePhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, phone)

	if strings.HasPrefix(digits, trunkPrefix) {
		digits = "6" + digits
	}
	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}

	return digits
}

// WhatsAppLink builds https://wa.me/<number>?text=<body>.
func WhatsAppLink(phone, body string) string {
	return whatsAppBaseURL + NormalizePhone(phone) + "?text=" + EncodeComponent(body)
}

// BuildLinks builds the links for the selected channels.
func BuildLinks(email, phone string, msg message.Message, channels Channels) Links {
	var links Links
	if channels.Email {
		links.Email = EmailLink(email, msg.Subject, msg.Body)
	}
	if channels.WhatsApp {
		links.WhatsApp = WhatsAppLink(phone, msg.Body)
	}

	return links
}

// HasDialableNumber reports whether phone contains any digit.
func HasDialableNumber(phone string) bool {
	return strings.IndexFunc(phone, unicode.IsDigit) >= 0
}
