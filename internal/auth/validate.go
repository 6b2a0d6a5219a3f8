package auth

import "regexp"

// emailPattern accepts anything of the form local@domain.tld with no
// whitespace or extra @ signs. Deliberately loose.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email looks like a plausible address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
