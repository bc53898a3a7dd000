package secure

import (
	"strings"
	"testing"
)

func TestValidateNickname(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		want     bool
	}{
		{"simple", "ada", true},
		{"with space", "ada lovelace", true},
		{"hyphen underscore", "ada-lovelace_1815", true},
		{"trimmed before checking", "  ada  ", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too long", strings.Repeat("a", 51), false},
		{"exactly max", strings.Repeat("a", 50), true},
		{"angle brackets", "<ada>", false},
		{"script tag", "<script>alert(1)</script>", false},
		{"emoji", "ada🎉", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateNickname(tt.nickname)
			if res.Valid != tt.want {
				t.Fatalf("ValidateNickname(%q).Valid = %v, want %v (err: %s)", tt.nickname, res.Valid, tt.want, res.Err)
			}
			if !res.Valid && res.Err == "" {
				t.Fatalf("invalid result carries no reason")
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	got := SanitizeInput("<script>alert(1)</script>john")
	if strings.ContainsAny(got, "<>") {
		t.Fatalf("sanitized %q still contains angle brackets", got)
	}
	if strings.Contains(strings.ToLower(got), "script") {
		t.Fatalf("sanitized %q still contains 'script'", got)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"  ada  ", "ada"},
		{"javascript:alert(1)", "alert(1)"},
		{"JaVaScRiPt:alert(1)", "alert(1)"},
		{"onclick=evil", "evil"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeInput(tt.in); got != tt.want {
			t.Fatalf("SanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := SanitizeInput(strings.Repeat("x", 250)); len(got) != MaxInputLen {
		t.Fatalf("sanitized length = %d, want %d", len(got), MaxInputLen)
	}
}

func TestValidateTaskTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"plain", "Kirjoita onnitteluruno", true},
		{"quotes ok", `Kommentoi "voi pojat".`, true},
		{"empty", "", false},
		{"script tag", "<script>alert(1)</script>", false},
		{"javascript proto", "javascript:alert(1)", false},
		{"event handler", "x onclick=evil", false},
		{"iframe", "<iframe src=x>", false},
		{"eval", "eval(payload)", false},
		{"document ref", "document.cookie", false},
		{"window ref", "window.location", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateTaskTitle(tt.title); got != tt.want {
				t.Fatalf("ValidateTaskTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}
