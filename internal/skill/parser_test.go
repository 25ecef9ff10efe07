package skill

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SkillFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	path := writeDescriptor(t, `---
name: test-skill
description: A test skill for testing purposes
allowed-tools: Read, Grep Glob
model: small
user-invocable: false
metadata:
  owner: platform
---

# Test Skill

This is the instruction content.
`)

	sk, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if sk.Name != "test-skill" {
		t.Errorf("Name = %q, want %q", sk.Name, "test-skill")
	}
	if sk.Description != "A test skill for testing purposes" {
		t.Errorf("Description = %q", sk.Description)
	}
	if want := []string{"Read", "Grep", "Glob"}; !reflect.DeepEqual(sk.AllowedTools, want) {
		t.Errorf("AllowedTools = %v, want %v", sk.AllowedTools, want)
	}
	if sk.Model != "small" {
		t.Errorf("Model = %q, want %q", sk.Model, "small")
	}
	if sk.UserInvocable == nil || *sk.UserInvocable {
		t.Errorf("UserInvocable = %v, want false", sk.UserInvocable)
	}
	if sk.Extra["owner"] != "platform" {
		t.Errorf("Extra = %v, want owner=platform", sk.Extra)
	}
	if !strings.Contains(sk.Instructions, "# Test Skill") {
		t.Errorf("Instructions missing heading: %q", sk.Instructions)
	}
	if !strings.Contains(sk.Instructions, "This is the instruction content.") {
		t.Errorf("Instructions missing body: %q", sk.Instructions)
	}
}

func TestParseMetadataSkipsBody(t *testing.T) {
	path := writeDescriptor(t, `---
name: meta-only
description: metadata load
---

Body text that discovery never needs.
`)

	md, err := ParseMetadata(path)
	if err != nil {
		t.Fatalf("ParseMetadata() error = %v", err)
	}
	if md.Name != "meta-only" || md.Description != "metadata load" {
		t.Errorf("unexpected metadata: %+v", md)
	}
	if md.UserInvocable != nil {
		t.Errorf("UserInvocable = %v, want nil when absent", md.UserInvocable)
	}
}

func TestParseFileEmptyBody(t *testing.T) {
	path := writeDescriptor(t, "---\nname: bare\ndescription: no body\n---\n")

	sk, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if sk.Instructions != "" {
		t.Errorf("Instructions = %q, want empty", sk.Instructions)
	}
}

func TestParseFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no frontmatter", content: "# Just Markdown\n"},
		{name: "unterminated frontmatter", content: "---\nname: broken\n"},
		{name: "invalid yaml", content: "---\nname: [unbalanced\n---\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDescriptor(t, tt.content)
			if _, err := ParseFile(path); err == nil {
				t.Errorf("ParseFile() expected error for %s", tt.name)
			}
		})
	}
}

func TestSplitTools(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "commas", input: "Read,Grep,Glob", want: []string{"Read", "Grep", "Glob"}},
		{name: "commas and spaces", input: "Read, Grep  Glob", want: []string{"Read", "Grep", "Glob"}},
		{name: "only separators", input: " , , ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitTools(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitTools(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
