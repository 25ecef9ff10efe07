// Package skill implements directory-based agent skills: scaffolding new
// skills from embedded templates, discovering and parsing SKILL.md files,
// and checking skills against the naming and structure contract.
//
// A skill is a directory whose name doubles as its identifier. It contains
// a SKILL.md descriptor with YAML frontmatter plus optional scripts/,
// references/, and assets/ resource directories.
package skill

// SkillFileName is the descriptor file name within a skill directory.
const SkillFileName = "SKILL.md"

// Metadata is the frontmatter portion of a SKILL.md descriptor. It is
// cheap to load and is all that discovery needs; the instruction body is
// loaded separately on demand.
type Metadata struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	AllowedTools  []string          `json:"allowed_tools,omitempty"`
	Model         string            `json:"model,omitempty"`
	Context       string            `json:"context,omitempty"`
	UserInvocable *bool             `json:"user_invocable,omitempty"`
	Extra         map[string]string `json:"metadata,omitempty"`
}

// Skill is a fully loaded skill: metadata plus the Markdown instruction
// body that follows the frontmatter.
type Skill struct {
	Metadata
	Instructions string `json:"instructions"`
	Path         string `json:"path"`
}
