package strength

import (
	"strconv"
	"unicode/utf8"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/wordlist"
)

// Suggest returns actionable improvements for pwd, testing the same six
// requirements as Check but with length first; existing consumers depend on
// that emission order. Not memoized.
func (c *Checker) Suggest(pwd string) []string {
	var out []string

	if utf8.RuneCountInString(pwd) < c.minLen {
		out = append(out, "Increase length to at least "+strconv.Itoa(c.minLen)+" characters")
	}

	hasUpper, hasLower, hasDigit, hasSpecial := scanClasses(pwd)
	if !hasUpper {
		out = append(out, "Add uppercase letters")
	}
	if !hasLower {
		out = append(out, "Add lowercase letters")
	}
	if !hasDigit {
		out = append(out, "Add numbers")
	}
	if !hasSpecial {
		out = append(out, "Add special characters")
	}

	if wordlist.Contains(c.weak, pwd) {
		out = append(out, "Avoid common passwords")
	} else if wordlist.Contains(c.banned, pwd) {
		out = append(out, "This password is banned due to security breaches")
	}

	if len(out) == 0 {
		out = append(out, "Your password meets all requirements!")
	}
	return out
}
