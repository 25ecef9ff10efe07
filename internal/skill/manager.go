package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/skillforge/cli/internal/ui"
)

// ErrNotFound reports that no skill with the requested name exists under
// the manager's root.
var ErrNotFound = errors.New("skill not found")

// Manager operates on the skills beneath a single root directory. Each
// immediate subdirectory containing a SKILL.md is one skill.
type Manager struct {
	// Root is the absolute path of the skills directory.
	Root string
}

// NewManager returns a manager rooted at dir, resolved to an absolute
// path. The root need not exist yet; discovery of a missing root simply
// yields no skills.
func NewManager(dir string) (*Manager, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve skills root %s: %w", dir, err)
	}
	return &Manager{Root: abs}, nil
}

// Dir returns the directory a skill with the given name would occupy.
func (m *Manager) Dir(name string) string {
	return filepath.Join(m.Root, name)
}

// Discover scans the root for skills and returns their metadata, sorted
// by name. Directories whose descriptor fails to parse, or whose
// frontmatter name does not match the directory name, are skipped with a
// warning rather than failing the whole scan.
func (m *Manager) Discover() ([]Metadata, error) {
	entries, err := os.ReadDir(m.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read skills directory %s: %w", m.Root, err)
	}

	var skills []Metadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		descriptor := filepath.Join(m.Root, entry.Name(), SkillFileName)
		if _, err := os.Stat(descriptor); err != nil {
			continue
		}

		md, err := ParseMetadata(descriptor)
		if err != nil {
			ui.PrintWarning("Skipping %s: %v", entry.Name(), err)
			continue
		}
		if md.Name != entry.Name() {
			ui.PrintWarning("Skipping %s: frontmatter name %q does not match the directory name", entry.Name(), md.Name)
			continue
		}

		skills = append(skills, md)
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Load returns the full skill (metadata and instruction body) for name.
func (m *Manager) Load(name string) (*Skill, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	descriptor := filepath.Join(m.Dir(name), SkillFileName)
	if _, err := os.Stat(descriptor); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return ParseFile(descriptor)
}

// Delete removes a skill directory and everything inside it.
func (m *Manager) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	dir := m.Dir(name)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("delete skill %s: %w", name, err)
	}
	return nil
}
