package skill

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLen is the maximum allowed length for a skill identifier.
const MaxNameLen = 40

// Title converts a hyphen-case skill identifier to its display form:
// each hyphen-separated segment is capitalized (first rune upper, rest
// lower) and segments are joined with single spaces.
//
// Empty segments from consecutive hyphens are kept as empty tokens, so
// "x--y" becomes "X  Y" with a double space.
//
// Example: "my-new-skill" → "My New Skill"
func Title(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// ValidateName checks a skill identifier against the naming contract:
//   - Non-empty, at most MaxNameLen characters
//   - Lowercase letters, digits, and hyphens only
//   - No leading or trailing hyphen
//   - No consecutive hyphens
//
// The identifier doubles as the skill's directory name, so these rules
// keep it safe as a path component and CLI argument.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("skill name too long (%d chars, max %d)", len(name), MaxNameLen)
	}

	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return fmt.Errorf("skill name cannot start or end with a hyphen")
	}

	if strings.Contains(name, "--") {
		return fmt.Errorf("skill name cannot contain consecutive hyphens")
	}

	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return fmt.Errorf("skill name contains invalid character %q — only lowercase letters, digits, and hyphens are allowed", r)
		}
	}

	return nil
}

var (
	// disallowedChars matches anything not in [a-z0-9-].
	disallowedChars = regexp.MustCompile(`[^a-z0-9\-]`)
	// multiHyphen collapses consecutive hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// SuggestName converts a string to the nearest identifier satisfying the
// naming contract:
//   - Lowercases
//   - Replaces spaces and underscores with hyphens
//   - Strips all characters not in [a-z0-9-]
//   - Collapses consecutive hyphens
//   - Trims leading/trailing hyphens and caps at MaxNameLen
//
// Example: "My API Helper (v2)" → "my-api-helper-v2"
func SuggestName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = disallowedChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxNameLen {
		s = strings.Trim(s[:MaxNameLen], "-")
	}
	return s
}
