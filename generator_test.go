package credvault

import (
	"errors"
	"strings"
	"testing"
)

func TestGeneratePassword_Length(t *testing.T) {
	for _, length := range []int{1, 8, 20, 64, 256} {
		password, err := GeneratePassword(length, CharsetAll, false)
		if err != nil {
			t.Fatalf("GeneratePassword(%d) error = %v", length, err)
		}
		if len(password) != length {
			t.Errorf("length = %d, want %d", len(password), length)
		}
	}
}

func TestGeneratePassword_AlphabetCoverage(t *testing.T) {
	tests := []struct {
		name     string
		charsets Charset
		allowed  string
	}{
		{"lowercase only", CharsetLower, lowerChars},
		{"uppercase only", CharsetUpper, upperChars},
		{"digits only", CharsetDigits, digitChars},
		{"symbols only", CharsetSymbols, symbolChars},
		{"lower and digits", CharsetLower | CharsetDigits, lowerChars + digitChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := GeneratePassword(100, tt.charsets, false)
			if err != nil {
				t.Fatalf("GeneratePassword() error = %v", err)
			}
			for _, r := range password {
				if !strings.ContainsRune(tt.allowed, r) {
					t.Errorf("character %q outside selected alphabet", r)
				}
			}
		})
	}
}

func TestGeneratePassword_ExcludeAmbiguous(t *testing.T) {
	// Long enough that every ambiguous character would almost surely
	// appear if it were still in the alphabet.
	password, err := GeneratePassword(2000, CharsetAll, true)
	if err != nil {
		t.Fatal(err)
	}

	if strings.ContainsAny(password, ambiguousChars) {
		t.Errorf("password contains ambiguous characters: %q", password)
	}
}

func TestGeneratePassword_Errors(t *testing.T) {
	if _, err := GeneratePassword(20, 0, false); !errors.Is(err, ErrNoCharsetSelected) {
		t.Errorf("no charset: error = %v, want ErrNoCharsetSelected", err)
	}
	if _, err := GeneratePassword(0, CharsetAll, false); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero length: error = %v, want ErrInvalidParameter", err)
	}
	if _, err := GeneratePassword(-5, CharsetAll, false); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative length: error = %v, want ErrInvalidParameter", err)
	}
}

func TestGeneratePassword_Independent(t *testing.T) {
	a, err := GeneratePassword(32, CharsetAll, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GeneratePassword(32, CharsetAll, false)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two generated passwords are identical")
	}
}

func TestGeneratePassphrase_WordCount(t *testing.T) {
	tests := []struct {
		name      string
		wordCount int
		wantWords int
	}{
		{"within range", 6, 6},
		{"minimum", 4, 4},
		{"maximum", 8, 8},
		{"clamped up", 1, 4},
		{"clamped up from zero", 0, 4},
		{"clamped down", 20, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passphrase, err := GeneratePassphrase(tt.wordCount)
			if err != nil {
				t.Fatalf("GeneratePassphrase() error = %v", err)
			}

			words := strings.Split(passphrase, "-")
			if len(words) != tt.wantWords {
				t.Errorf("word count = %d, want %d", len(words), tt.wantWords)
			}
			for _, w := range words {
				if w == "" {
					t.Error("empty word in passphrase")
				}
			}
		})
	}
}

func TestGeneratePassphrase_Options(t *testing.T) {
	t.Run("separator", func(t *testing.T) {
		passphrase, err := GeneratePassphrase(4, WithSeparator("."))
		if err != nil {
			t.Fatal(err)
		}
		if strings.Count(passphrase, ".") != 3 {
			t.Errorf("separator count = %d, want 3", strings.Count(passphrase, "."))
		}
	})

	t.Run("capitalize", func(t *testing.T) {
		passphrase, err := GeneratePassphrase(5, WithCapitalize())
		if err != nil {
			t.Fatal(err)
		}
		for _, w := range strings.Split(passphrase, "-") {
			if w[0] < 'A' || w[0] > 'Z' {
				t.Errorf("word %q is not capitalized", w)
			}
		}
	})

	t.Run("digits", func(t *testing.T) {
		passphrase, err := GeneratePassphrase(4, WithDigits(3))
		if err != nil {
			t.Fatal(err)
		}
		parts := strings.Split(passphrase, "-")
		suffix := parts[len(parts)-1]
		if len(suffix) != 3 {
			t.Fatalf("digit suffix = %q, want 3 digits", suffix)
		}
		for i := 0; i < len(suffix); i++ {
			if suffix[i] < '0' || suffix[i] > '9' {
				t.Errorf("suffix character %q is not a digit", suffix[i])
			}
		}
	})

	t.Run("digits clamped", func(t *testing.T) {
		passphrase, err := GeneratePassphrase(4, WithDigits(100))
		if err != nil {
			t.Fatal(err)
		}
		parts := strings.Split(passphrase, "-")
		if len(parts[len(parts)-1]) != 4 {
			t.Errorf("digit suffix length = %d, want 4", len(parts[len(parts)-1]))
		}
	})
}

func TestWordlist(t *testing.T) {
	if len(wordlist) != 256 {
		t.Fatalf("wordlist size = %d, want 256", len(wordlist))
	}

	seen := make(map[string]bool, len(wordlist))
	for _, w := range wordlist {
		if w == "" {
			t.Error("empty word in wordlist")
			continue
		}
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true

		if w != strings.ToLower(w) {
			t.Errorf("word %q is not lowercase", w)
		}
		if strings.Contains(w, "-") || strings.Contains(w, " ") {
			t.Errorf("word %q contains a separator character", w)
		}
	}
}
