// Package strength provides heuristic password quality scoring.
// It is a pure analysis package, independent of hashing correctness:
// scores guide users, they never gate cryptographic operations.
package strength

import (
	"math"
	"strings"
	"unicode"
)

// Category represents the qualitative strength band of a password.
type Category string

const (
	// CategoryWeak indicates a password that should not be used (score < 40).
	CategoryWeak Category = "weak"
	// CategoryFair indicates a marginal password (score 40-59).
	CategoryFair Category = "fair"
	// CategoryStrong indicates a good password (score 60-79).
	CategoryStrong Category = "strong"
	// CategoryVeryStrong indicates an excellent password (score >= 80).
	CategoryVeryStrong Category = "very strong"
)

// Category thresholds.
const (
	fairThreshold       = 40
	strongThreshold     = 60
	veryStrongThreshold = 80
)

// referenceEntropyBits is the entropy estimate that maps to a base score of
// 100. 80 bits is beyond realistic online and most offline guessing.
const referenceEntropyBits = 80.0

// maxWeaknessPenalty caps the total score deduction from detected patterns.
const maxWeaknessPenalty = 40

// penaltyPerWeakness is the score deduction for each detected pattern.
const penaltyPerWeakness = 10

// recommendedLength is the password length below which feedback suggests
// adding characters.
const recommendedLength = 12

// Result contains the outcome of password strength analysis.
type Result struct {
	// Score is the overall strength score in [0, 100].
	Score int
	// Category is the qualitative band derived from Score.
	Category Category
	// EntropyBits is the length-and-charset entropy estimate
	// log2(charsetSize^length).
	EntropyBits float64
	// Feedback lists suggestions for improving the password, in order of
	// importance. Empty for passwords with nothing to improve.
	Feedback []string
}

// commonPasswords are frequently used passwords and fragments. A password
// containing any of them is penalized.
var commonPasswords = []string{
	"password", "passwort", "qwerty", "letmein", "welcome", "monkey",
	"dragon", "master", "admin", "login", "abc123", "iloveyou", "sunshine",
	"princess", "football", "baseball", "shadow", "superman", "trustno1",
}

// keyboardRows are physical key sequences checked for runs in either
// direction.
var keyboardRows = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm", "1234567890",
}

// Analyze scores a password. It is a pure function: identical input always
// yields an identical Result, and nothing is retained.
//
// The score combines a length-and-charset entropy estimate with penalties
// for detected weaknesses: repeated characters, ascending or descending
// sequences, keyboard runs, year-like digit groups, and common-password
// fragments. Each weakness deducts 10 points, capped at 40 in total, and
// the final score is clamped to [0, 100].
func Analyze(password string) Result {
	if password == "" {
		return Result{
			Score:    0,
			Category: CategoryWeak,
			Feedback: []string{"password is empty"},
		}
	}

	runes := []rune(password)
	entropy := entropyBits(runes)

	base := int(math.Round(entropy / referenceEntropyBits * 100))
	if base > 100 {
		base = 100
	}

	weaknesses := detectWeaknesses(password, runes)
	penalty := penaltyPerWeakness * len(weaknesses)
	if penalty > maxWeaknessPenalty {
		penalty = maxWeaknessPenalty
	}

	score := base - penalty
	if score < 0 {
		score = 0
	}

	feedback := append(weaknesses, suggestions(runes)...)

	return Result{
		Score:       score,
		Category:    categorize(score),
		EntropyBits: entropy,
		Feedback:    feedback,
	}
}

// categorize maps a score to its qualitative band.
func categorize(score int) Category {
	switch {
	case score < fairThreshold:
		return CategoryWeak
	case score < strongThreshold:
		return CategoryFair
	case score < veryStrongThreshold:
		return CategoryStrong
	default:
		return CategoryVeryStrong
	}
}

// entropyBits estimates password entropy as log2(charsetSize^length) where
// charsetSize sums the sizes of the character classes actually present.
func entropyBits(runes []rune) float64 {
	var lower, upper, digit, symbol, other bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r) && r < 128:
			lower = true
		case unicode.IsUpper(r) && r < 128:
			upper = true
		case unicode.IsDigit(r) && r < 128:
			digit = true
		case r < 128:
			symbol = true
		default:
			other = true
		}
	}

	charset := 0
	if lower {
		charset += 26
	}
	if upper {
		charset += 26
	}
	if digit {
		charset += 10
	}
	if symbol {
		charset += 33
	}
	if other {
		charset += 47
	}
	if charset == 0 {
		return 0
	}

	return float64(len(runes)) * math.Log2(float64(charset))
}

// detectWeaknesses returns one message per detected pattern class.
func detectWeaknesses(password string, runes []rune) []string {
	var found []string

	if hasRepeatRun(runes) {
		found = append(found, "avoid repeating the same character")
	}
	if hasSequenceRun(runes) {
		found = append(found, "avoid sequential characters like abc or 321")
	}
	if hasKeyboardRun(password) {
		found = append(found, "avoid keyboard patterns like qwerty")
	}
	if hasYearOrDate(runes) {
		found = append(found, "avoid years and dates")
	}
	if containsCommonPassword(password) {
		found = append(found, "avoid common passwords and dictionary words")
	}

	return found
}

// suggestions returns improvement hints that are not weaknesses per se and
// carry no score penalty.
func suggestions(runes []rune) []string {
	var out []string

	if len(runes) < recommendedLength {
		out = append(out, "use at least 12 characters")
	}

	var lower, upper, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower {
		out = append(out, "add lowercase letters")
	}
	if !upper {
		out = append(out, "add uppercase letters")
	}
	if !digit {
		out = append(out, "add digits")
	}
	if !symbol {
		out = append(out, "add symbols")
	}

	return out
}

// hasRepeatRun reports three or more identical consecutive characters.
func hasRepeatRun(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasSequenceRun reports three or more consecutive ascending or descending
// characters, like "abc", "789", or "cba".
func hasSequenceRun(runes []rune) bool {
	up, down := 1, 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1]+1 {
			up++
			down = 1
		} else if runes[i] == runes[i-1]-1 {
			down++
			up = 1
		} else {
			up, down = 1, 1
		}
		if up >= 3 || down >= 3 {
			return true
		}
	}
	return false
}

// hasKeyboardRun reports a four-character run along a keyboard row in
// either direction.
func hasKeyboardRun(password string) bool {
	lowered := strings.ToLower(password)
	for _, row := range keyboardRows {
		for i := 0; i+4 <= len(row); i++ {
			fragment := row[i : i+4]
			if strings.Contains(lowered, fragment) || strings.Contains(lowered, reverse(fragment)) {
				return true
			}
		}
	}
	return false
}

// hasYearOrDate reports a plausible year (1900-2099) or a six-or-more digit
// group, which usually encodes a date.
func hasYearOrDate(runes []rune) bool {
	digits := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] >= '0' && runes[i] <= '9' {
			digits++
			if digits >= 6 {
				return true
			}
		} else {
			digits = 0
		}
	}

	s := string(runes)
	for i := 0; i+4 <= len(s); i++ {
		if (strings.HasPrefix(s[i:], "19") || strings.HasPrefix(s[i:], "20")) &&
			isDigit(s[i+2]) && isDigit(s[i+3]) {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// containsCommonPassword reports whether the password contains a known
// common password or fragment.
func containsCommonPassword(password string) bool {
	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lowered, common) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
