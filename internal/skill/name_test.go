package skill

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "multi word", input: "my-new-skill", want: "My New Skill"},
		{name: "single letter", input: "a", want: "A"},
		{name: "consecutive hyphens keep empty token", input: "x--y", want: "X  Y"},
		{name: "digits preserved", input: "pdf2png", want: "Pdf2png"},
		{name: "uppercase input lowered after first rune", input: "MY-API", want: "My Api"},
		{name: "empty string", input: "", want: ""},
		{name: "trailing hyphen", input: "demo-", want: "Demo "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Title(tt.input)
			if got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "export", wantErr: false},
		{name: "hyphenated", input: "my-skill", wantErr: false},
		{name: "digits", input: "skill123", wantErr: false},
		{name: "max length ok", input: strings.Repeat("a", MaxNameLen), wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxNameLen+1), wantErr: true},
		{name: "leading hyphen", input: "-skill", wantErr: true},
		{name: "trailing hyphen", input: "skill-", wantErr: true},
		{name: "double hyphen", input: "my--skill", wantErr: true},
		{name: "uppercase", input: "MySkill", wantErr: true},
		{name: "underscore", input: "my_skill", wantErr: true},
		{name: "space", input: "my skill", wantErr: true},
		{name: "path separator", input: "my/skill", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSuggestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces and parens", input: "My API Helper (v2)", want: "my-api-helper-v2"},
		{name: "underscores", input: "my_skill_name", want: "my-skill-name"},
		{name: "collapse hyphens", input: "a--b", want: "a-b"},
		{name: "already valid", input: "already-valid", want: "already-valid"},
		{name: "only special chars", input: "()", want: ""},
		{name: "over length capped", input: strings.Repeat("ab-", 20), want: strings.Repeat("ab-", 13) + "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestName(tt.input)
			if got != tt.want {
				t.Errorf("SuggestName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if got != "" {
				if err := ValidateName(got); err != nil {
					t.Errorf("SuggestName(%q) = %q does not satisfy the contract: %v", tt.input, got, err)
				}
			}
		})
	}
}
