// Package secure holds the input validation and sanitization rules shared
// by the stores. Nicknames are the primary keys of the progress map, so
// everything that reaches storage goes through here first.
package secure

import (
	"regexp"
	"strings"
)

// MaxNicknameLen bounds validated nicknames; MaxInputLen bounds sanitized
// free-form input.
const (
	MaxNicknameLen = 50
	MaxInputLen    = 100
)

var (
	nicknamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)

	jsProtoPattern = regexp.MustCompile(`(?i)javascript:`)
	onEventPattern = regexp.MustCompile(`(?i)on\w+=`)
	scriptPattern  = regexp.MustCompile(`(?i)script`)

	// Patterns that disqualify a task title outright.
	dangerousTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)on\w+=`),
		regexp.MustCompile(`(?i)<iframe`),
		regexp.MustCompile(`(?i)eval\(`),
		regexp.MustCompile(`(?i)document\.`),
		regexp.MustCompile(`(?i)window\.`),
	}
)

// Result is a structured validation outcome. Err is a human-readable
// reason, set only when Valid is false.
type Result struct {
	Valid bool
	Err   string
}

// ValidateNickname checks a user-chosen nickname. The input is trimmed
// before the rules apply: non-empty, at most MaxNicknameLen characters,
// letters/digits/whitespace/hyphen/underscore only.
func ValidateNickname(nickname string) Result {
	trimmed := strings.TrimSpace(nickname)

	if trimmed == "" {
		return Result{Err: "nickname cannot be empty"}
	}
	if len(trimmed) > MaxNicknameLen {
		return Result{Err: "nickname must be 50 characters or less"}
	}
	if !nicknamePattern.MatchString(trimmed) {
		return Result{Err: "nickname can only contain letters, numbers, spaces, hyphens, and underscores"}
	}
	return Result{Valid: true}
}

// SanitizeInput strips the obvious XSS vectors from free-form input: angle
// brackets, javascript: prefixes, inline event-handler attributes, and the
// literal substring "script" (case-insensitive), then truncates to
// MaxInputLen. This is a defense-in-depth filter for values that end up in
// storage keys and display names, not a full HTML sanitizer; anything that
// renders untrusted content still needs proper escaping at the render site.
func SanitizeInput(input string) string {
	if input == "" {
		return ""
	}
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = jsProtoPattern.ReplaceAllString(s, "")
	s = onEventPattern.ReplaceAllString(s, "")
	s = scriptPattern.ReplaceAllString(s, "")
	if len(s) > MaxInputLen {
		s = s[:MaxInputLen]
	}
	return s
}

// ValidateTaskTitle reports whether a task title is free of the known
// script-injection vectors. Unlike SanitizeInput it rejects rather than
// rewrites, so catalog content is stored exactly as entered or not at all.
func ValidateTaskTitle(title string) bool {
	if title == "" {
		return false
	}
	for _, p := range dangerousTitlePatterns {
		if p.MatchString(title) {
			return false
		}
	}
	return true
}
