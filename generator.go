package credvault

import (
	"fmt"
	"strings"

	"github.com/credvault/core-go/internal/crypto"
)

// Charset selects the character classes used by GeneratePassword.
type Charset uint8

const (
	// CharsetLower selects lowercase letters a-z.
	CharsetLower Charset = 1 << iota
	// CharsetUpper selects uppercase letters A-Z.
	CharsetUpper
	// CharsetDigits selects digits 0-9.
	CharsetDigits
	// CharsetSymbols selects punctuation symbols.
	CharsetSymbols
)

// CharsetAll selects every character class.
const CharsetAll = CharsetLower | CharsetUpper | CharsetDigits | CharsetSymbols

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?/|~"

	// ambiguousChars are easily confused glyphs removed when
	// excludeAmbiguous is set.
	ambiguousChars = "0OoIil1|"
)

// Passphrase word-count clamp range.
const (
	// MinPassphraseWords is the fewest words a passphrase may have.
	MinPassphraseWords = 4
	// MaxPassphraseWords is the most words a passphrase may have.
	MaxPassphraseWords = 8
)

const maxPassphraseDigits = 4

// GeneratePassword generates a random password of the given length from the
// selected character classes. With excludeAmbiguous set, the characters
// 0, O, o, I, i, l, 1, and | are removed from the alphabet first.
//
// Indexing into the alphabet uses rejection sampling over the secure random
// source, so every character is drawn uniformly with no modulo bias.
//
// A length below 1 returns an error matching ErrInvalidParameter; an empty
// charset returns ErrNoCharsetSelected.
func GeneratePassword(length int, charsets Charset, excludeAmbiguous bool) (string, error) {
	if length < 1 {
		return "", &ParameterError{Param: "length", Message: fmt.Sprintf("must be at least 1, got %d", length)}
	}

	alphabet := buildAlphabet(charsets, excludeAmbiguous)
	if len(alphabet) == 0 {
		return "", ErrNoCharsetSelected
	}

	password := make([]byte, length)
	for i := range password {
		idx, err := uniformIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		password[i] = alphabet[idx]
	}

	return string(password), nil
}

// GeneratePassphrase generates a passphrase of wordCount random words drawn
// independently from the embedded wordlist, joined with the configured
// separator (default "-"). wordCount is clamped to [4, 8]. WithCapitalize
// capitalizes each word; WithDigits appends random digits.
func GeneratePassphrase(wordCount int, opts ...PassphraseOption) (string, error) {
	cfg := passphraseConfig{separator: "-"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if wordCount < MinPassphraseWords {
		wordCount = MinPassphraseWords
	}
	if wordCount > MaxPassphraseWords {
		wordCount = MaxPassphraseWords
	}
	if cfg.digits < 0 {
		cfg.digits = 0
	}
	if cfg.digits > maxPassphraseDigits {
		cfg.digits = maxPassphraseDigits
	}

	words := make([]string, wordCount)
	for i := range words {
		idx, err := uniformIndex(len(wordlist))
		if err != nil {
			return "", err
		}
		word := wordlist[idx]
		if cfg.capitalize {
			word = strings.ToUpper(word[:1]) + word[1:]
		}
		words[i] = word
	}

	passphrase := strings.Join(words, cfg.separator)

	if cfg.digits > 0 {
		var sb strings.Builder
		sb.WriteString(passphrase)
		sb.WriteString(cfg.separator)
		for i := 0; i < cfg.digits; i++ {
			idx, err := uniformIndex(10)
			if err != nil {
				return "", err
			}
			sb.WriteByte(digitChars[idx])
		}
		passphrase = sb.String()
	}

	return passphrase, nil
}

// buildAlphabet assembles the generation alphabet from the selected classes.
func buildAlphabet(charsets Charset, excludeAmbiguous bool) string {
	var sb strings.Builder
	if charsets&CharsetLower != 0 {
		sb.WriteString(lowerChars)
	}
	if charsets&CharsetUpper != 0 {
		sb.WriteString(upperChars)
	}
	if charsets&CharsetDigits != 0 {
		sb.WriteString(digitChars)
	}
	if charsets&CharsetSymbols != 0 {
		sb.WriteString(symbolChars)
	}

	alphabet := sb.String()
	if !excludeAmbiguous {
		return alphabet
	}

	var filtered strings.Builder
	for i := 0; i < len(alphabet); i++ {
		if !strings.ContainsRune(ambiguousChars, rune(alphabet[i])) {
			filtered.WriteByte(alphabet[i])
		}
	}
	return filtered.String()
}

// uniformIndex returns a uniform random index in [0, n) using rejection
// sampling: random bytes above the largest multiple of n are discarded
// rather than folded in, which would bias low indices.
func uniformIndex(n int) (int, error) {
	limit := 256 - 256%n
	for {
		b, err := crypto.Bytes(1)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}
