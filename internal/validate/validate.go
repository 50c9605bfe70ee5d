package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^[0-9+()\- ]{7,20}$`)
	reName  = regexp.MustCompile(`^[\pL0-9 .'\-]{1,60}$`)
)

// The fixed bracket set offered by the hero price select.
var priceBrackets = map[string]bool{
	"0-25000":      true,
	"25000-50000":  true,
	"50000-100000": true,
	"100000+":      true,
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Phone is optional on signup and inquiry forms; empty passes.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, rePhone.MatchString(s)
}

func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reName.MatchString(s)
}

// Required mirrors the native form validation of the original: present or not.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// PriceBracket accepts only the enumerated bracket strings; empty means "All
// Prices".
func PriceBracket(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, priceBrackets[s]
}

// Page parses a 1-based page number, defaulting to 1 on anything unusable.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func Role(s string) string {
	if s == "dealer" {
		return "dealer"
	}
	return "user"
}
