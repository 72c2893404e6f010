// Package flag maps currency codes to flag image URLs.
package flag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultHost = "https://flagcdn.com"

	// unknownCountry is used for codes too short to derive a country from.
	unknownCountry = "xx"
)

var currencyToCountry = map[string]string{
	"USD": "us",
	"EUR": "eu",
	"GBP": "gb",
	"INR": "in",
	"JPY": "jp",
	"CNY": "cn",
	"AUD": "au",
	"CAD": "ca",
}

type Resolver struct {
	host string
}

func NewResolver(host string) *Resolver {
	host = strings.TrimSuffix(strings.TrimSpace(host), "/")
	if host == "" {
		host = DefaultHost
	}
	return &Resolver{host: host}
}

// ResolveFlagURL returns the 40px wide flag image URL for a currency code.
func (r *Resolver) ResolveFlagURL(currencyCode string) string {
	return fmt.Sprintf("%s/w40/%s.png", r.host, CountryCode(currencyCode))
}

// CountryCode returns the two letter country code for a currency code. Codes missing from the
// table fall back to their first two characters, lowercased.
func CountryCode(currencyCode string) string {
	if cc, ok := currencyToCountry[currencyCode]; ok {
		return cc
	}
	if utf8.RuneCountInString(currencyCode) < 2 {
		return unknownCountry
	}
	runes := []rune(currencyCode)
	return strings.ToLower(string(runes[:2]))
}
