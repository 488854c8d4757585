package strength

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze_Empty(t *testing.T) {
	result := Analyze("")

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.Category != CategoryWeak {
		t.Errorf("Category = %q, want %q", result.Category, CategoryWeak)
	}
	if result.EntropyBits != 0 {
		t.Errorf("EntropyBits = %v, want 0", result.EntropyBits)
	}
	if len(result.Feedback) != 1 || result.Feedback[0] != "password is empty" {
		t.Errorf("Feedback = %v, want [password is empty]", result.Feedback)
	}
}

func TestAnalyze_Categories(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Category
	}{
		{"common word", "password", CategoryWeak},
		{"short digits", "1357", CategoryWeak},
		{"medium lowercase", "flumverbik", CategoryFair},
		{"long lowercase", "flumverbikzot", CategoryStrong},
		{"long mixed classes", "Kf8#mQ2&xLp9!vRz", CategoryVeryStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze(tt.password)
			if result.Category != tt.want {
				t.Errorf("Analyze(%q).Category = %q (score %d), want %q",
					tt.password, result.Category, result.Score, tt.want)
			}
		})
	}
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	passwords := []string{
		"a", "password123", "aaa111qwerty2020", "Kf8#mQ2&xLp9!vRzKf8#mQ2&xLp9!vRz",
	}
	for _, p := range passwords {
		result := Analyze(p)
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("Analyze(%q).Score = %d, out of [0, 100]", p, result.Score)
		}
	}
}

func TestAnalyze_LongerScoresHigher(t *testing.T) {
	short := Analyze("flumverbik")
	long := Analyze("flumverbikwozlat")
	if long.Score < short.Score {
		t.Errorf("longer password scored %d, shorter scored %d", long.Score, short.Score)
	}
}

func TestAnalyze_MoreClassesScoreHigher(t *testing.T) {
	single := Analyze("flumverbik")
	mixed := Analyze("Flum8erb#k")
	if mixed.Score < single.Score {
		t.Errorf("mixed-class password scored %d, single-class scored %d",
			mixed.Score, single.Score)
	}
	if mixed.EntropyBits <= single.EntropyBits {
		t.Errorf("mixed-class entropy %v not above single-class %v",
			mixed.EntropyBits, single.EntropyBits)
	}
}

func TestAnalyze_WeaknessDetection(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"repeated characters", "xaaax", "avoid repeating the same character"},
		{"ascending sequence", "xabcx", "avoid sequential characters like abc or 321"},
		{"descending sequence", "x765x", "avoid sequential characters like abc or 321"},
		{"keyboard row", "xqwerx", "avoid keyboard patterns like qwerty"},
		{"keyboard row reversed", "xlkjhx", "avoid keyboard patterns like qwerty"},
		{"year", "born1987", "avoid years and dates"},
		{"six digit group", "x925071x", "avoid years and dates"},
		{"common password", "MyLetMeIn!", "avoid common passwords and dictionary words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze(tt.password)
			if !containsFeedback(result.Feedback, tt.want) {
				t.Errorf("Analyze(%q).Feedback = %v, want to contain %q",
					tt.password, result.Feedback, tt.want)
			}
		})
	}
}

func TestAnalyze_NoFalsePositives(t *testing.T) {
	result := Analyze("Kf8#mQ2&xLp9!vRz")
	for _, f := range result.Feedback {
		if strings.HasPrefix(f, "avoid") {
			t.Errorf("unexpected weakness feedback %q", f)
		}
	}
}

func TestAnalyze_PenaltyCapped(t *testing.T) {
	// Triggers all five pattern classes. With the cap the score is
	// base minus 40, not base minus 50.
	result := Analyze("qwerty1234aaa1987password")
	if result.Score != 60 {
		t.Errorf("Score = %d, want 60", result.Score)
	}
}

func TestAnalyze_Suggestions(t *testing.T) {
	result := Analyze("flum")

	for _, want := range []string{
		"use at least 12 characters",
		"add uppercase letters",
		"add digits",
		"add symbols",
	} {
		if !containsFeedback(result.Feedback, want) {
			t.Errorf("Feedback = %v, want to contain %q", result.Feedback, want)
		}
	}
	if containsFeedback(result.Feedback, "add lowercase letters") {
		t.Errorf("Feedback = %v, lowercase suggestion not expected", result.Feedback)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := Analyze("tr0ub4dor&3")
	b := Analyze("tr0ub4dor&3")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("results differ: %+v vs %+v", a, b)
	}
}

func containsFeedback(feedback []string, want string) bool {
	for _, f := range feedback {
		if f == want {
			return true
		}
	}
	return false
}
