package skill

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate checks one skill against the structural contract and returns
// the list of violations found. An empty slice means the skill is valid.
//
// Checked rules:
//   - The skill directory exists and is a directory
//   - SKILL.md exists and is a regular file
//   - The frontmatter parses
//   - The identifier satisfies the naming contract
//   - The frontmatter name matches the directory name
//   - The description is non-empty
func (m *Manager) Validate(name string) []string {
	var issues []string

	if err := ValidateName(name); err != nil {
		issues = append(issues, err.Error())
	}

	dir := m.Dir(name)
	info, err := os.Stat(dir)
	if err != nil {
		return append(issues, fmt.Sprintf("skill directory does not exist: %s", dir))
	}
	if !info.IsDir() {
		return append(issues, fmt.Sprintf("%s is not a directory", dir))
	}

	descriptor := filepath.Join(dir, SkillFileName)
	fi, err := os.Lstat(descriptor)
	if err != nil {
		return append(issues, fmt.Sprintf("missing %s", SkillFileName))
	}
	if !fi.Mode().IsRegular() {
		return append(issues, fmt.Sprintf("%s must be a regular file", SkillFileName))
	}

	md, err := ParseMetadata(descriptor)
	if err != nil {
		return append(issues, err.Error())
	}

	if md.Name != name {
		issues = append(issues, fmt.Sprintf("frontmatter name %q does not match directory name %q", md.Name, name))
	}
	if md.Description == "" {
		issues = append(issues, "description is empty — fill in the frontmatter description")
	}

	return issues
}
