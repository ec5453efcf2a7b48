package strength

import (
	"strconv"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/wordlist"
)

// MinPasswordLength is the fifth requirement's threshold.
const MinPasswordLength = 12

// Characters counted as "special" by the fourth requirement.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// Results are memoized per checker, bounded to the most recent distinct passwords.
const resultCacheSize = 1000

// Result holds the outcome of a single strength check.
type Result struct {
	Strength string `json:"strength"`
	Score    int    `json:"score"` // 0..4
	Message  string `json:"message"`
}

// Checker scores passwords against six fixed requirements. Either wordlist
// may be nil, in which case the corresponding membership test is skipped.
// Safe for concurrent use.
type Checker struct {
	weak   []string
	banned []string
	minLen int
	cache  *lru.Cache[string, Result]
}

func NewChecker(weak, banned []string) *Checker {
	cache, _ := lru.New[string, Result](resultCacheSize)
	return &Checker{
		weak:   weak,
		banned: banned,
		minLen: MinPasswordLength,
		cache:  cache,
	}
}

// Check evaluates the six requirements and maps the met-count to a strength
// label, a 0..4 score, and a summary message. Repeated calls with the same
// password return the memoized result.
func (c *Checker) Check(password string) Result {
	if res, ok := c.cache.Get(password); ok {
		return res
	}
	res := c.evaluate(password)
	c.cache.Add(password, res)
	return res
}

func (c *Checker) evaluate(password string) Result {
	hasUpper, hasLower, hasDigit, hasSpecial := scanClasses(password)

	met := 0
	var missing []string

	if hasUpper {
		met++
	} else {
		missing = append(missing, "uppercase letter")
	}
	if hasLower {
		met++
	} else {
		missing = append(missing, "lowercase letter")
	}
	if hasDigit {
		met++
	} else {
		missing = append(missing, "number")
	}
	if hasSpecial {
		met++
	} else {
		missing = append(missing, "special character")
	}
	if utf8.RuneCountInString(password) >= c.minLen {
		met++
	} else {
		missing = append(missing, "minimum "+strconv.Itoa(c.minLen)+" characters")
	}

	// Weak list takes precedence over banned when both match.
	switch {
	case wordlist.Contains(c.weak, password):
		missing = append(missing, "not a common password")
	case wordlist.Contains(c.banned, password):
		missing = append(missing, "not a banned password")
	default:
		met++
	}

	return Result{
		Strength: strengthLabel(met),
		Score:    scoreFor(met),
		Message:  buildMessage(met, missing),
	}
}

// scanClasses reports which of the four character classes appear in pwd.
// Only ASCII letters/digits and the fixed special set count.
func scanClasses(pwd string) (hasUpper, hasLower, hasDigit, hasSpecial bool) {
	for _, r := range pwd {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	return
}

func strengthLabel(met int) string {
	switch met {
	case 6:
		return "Perfect"
	case 5:
		return "Strong"
	case 4:
		return "Good"
	case 3:
		return "Fair"
	case 2:
		return "Weak"
	default:
		return "Critical"
	}
}

// scoreFor collapses the six-level label onto the 0..4 scale the frontend
// expects; "Good" shares a bucket with "Fair".
func scoreFor(met int) int {
	switch {
	case met <= 1:
		return 0
	case met == 2:
		return 1
	case met <= 4:
		return 2
	case met == 5:
		return 3
	default:
		return 4
	}
}

func buildMessage(met int, missing []string) string {
	tail := " (" + strconv.Itoa(met) + "/6 parameters)"
	if met == 6 {
		return "Perfect! All security requirements met." + tail
	}
	body := "Missing: " + strings.Join(missing, ", ") + "." + tail
	switch {
	case met >= 5:
		return "Strong password. " + body
	case met >= 3:
		return "Fair password. " + body
	default:
		return "Weak password. " + body
	}
}
