package skill

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter mirrors the YAML header of a SKILL.md file. allowed-tools is
// a single comma/space-separated string in the descriptor and is split
// into a slice during conversion.
type frontmatter struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	AllowedTools  string            `yaml:"allowed-tools"`
	Model         string            `yaml:"model"`
	Context       string            `yaml:"context"`
	UserInvocable *bool             `yaml:"user-invocable"`
	Metadata      map[string]string `yaml:"metadata"`
}

func (fm *frontmatter) toMetadata() Metadata {
	return Metadata{
		Name:          fm.Name,
		Description:   fm.Description,
		AllowedTools:  splitTools(fm.AllowedTools),
		Model:         fm.Model,
		Context:       fm.Context,
		UserInvocable: fm.UserInvocable,
		Extra:         fm.Metadata,
	}
}

// ParseMetadata reads a SKILL.md file and returns its frontmatter only.
// Used during discovery where the instruction body is not needed.
func ParseMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read %s: %w", path, err)
	}

	fm, _, err := splitFrontmatter(string(data))
	if err != nil {
		return Metadata{}, err
	}

	return fm.toMetadata(), nil
}

// ParseFile reads a SKILL.md file and returns the full skill, including
// the instruction body after the frontmatter.
func ParseFile(path string) (*Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	fm, body, err := splitFrontmatter(string(data))
	if err != nil {
		return nil, err
	}

	return &Skill{
		Metadata:     fm.toMetadata(),
		Instructions: body,
		Path:         path,
	}, nil
}

// splitFrontmatter extracts the YAML frontmatter and the trimmed Markdown
// body from SKILL.md content. The frontmatter must open the file with ---
// and close with a line starting ---; everything after the closing
// delimiter is the body (possibly empty).
func splitFrontmatter(content string) (*frontmatter, string, error) {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "---") {
		return nil, "", fmt.Errorf("%s must start with YAML frontmatter (---)", SkillFileName)
	}

	rest := content[3:]
	end := strings.Index(rest, "\n---")
	if end == -1 {
		return nil, "", fmt.Errorf("%s frontmatter is missing its closing delimiter (---)", SkillFileName)
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &fm); err != nil {
		return nil, "", fmt.Errorf("invalid frontmatter YAML: %w", err)
	}

	body := strings.TrimPrefix(rest[end:], "\n---")
	return &fm, strings.TrimSpace(body), nil
}

// splitTools splits an allowed-tools value on commas and spaces,
// discarding empty entries. "Read, Grep Glob" → ["Read", "Grep", "Glob"].
func splitTools(s string) []string {
	if s == "" {
		return nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	tools := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tools = append(tools, f)
		}
	}
	if len(tools) == 0 {
		return nil
	}
	return tools
}
