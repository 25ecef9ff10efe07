package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePassesScaffoldedSkill(t *testing.T) {
	mgr := newTestManager(t)
	if _, err := Scaffold("fresh-skill", mgr.Root); err != nil {
		t.Fatal(err)
	}

	if issues := mgr.Validate("fresh-skill"); len(issues) != 0 {
		t.Errorf("Validate() issues = %v, want none", issues)
	}
}

func TestValidateFindsIssues(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, mgr *Manager) string
		wantHint string
	}{
		{
			name: "missing directory",
			setup: func(t *testing.T, mgr *Manager) string {
				return "ghost-skill"
			},
			wantHint: "does not exist",
		},
		{
			name: "missing descriptor",
			setup: func(t *testing.T, mgr *Manager) string {
				if err := os.MkdirAll(mgr.Dir("empty-skill"), 0o755); err != nil {
					t.Fatal(err)
				}
				return "empty-skill"
			},
			wantHint: "missing " + SkillFileName,
		},
		{
			name: "name mismatch",
			setup: func(t *testing.T, mgr *Manager) string {
				addSkill(t, mgr, "moved-skill", "other-name", "desc")
				return "moved-skill"
			},
			wantHint: "does not match",
		},
		{
			name: "invalid identifier",
			setup: func(t *testing.T, mgr *Manager) string {
				addSkill(t, mgr, "Bad_Name", "Bad_Name", "desc")
				return "Bad_Name"
			},
			wantHint: "invalid character",
		},
		{
			name: "empty description",
			setup: func(t *testing.T, mgr *Manager) string {
				addSkill(t, mgr, "quiet-skill", "quiet-skill", "")
				return "quiet-skill"
			},
			wantHint: "description is empty",
		},
		{
			name: "broken frontmatter",
			setup: func(t *testing.T, mgr *Manager) string {
				dir := mgr.Dir("broken-skill")
				if err := os.MkdirAll(dir, 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(dir, SkillFileName), []byte("no frontmatter here"), 0o644); err != nil {
					t.Fatal(err)
				}
				return "broken-skill"
			},
			wantHint: "frontmatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := newTestManager(t)
			name := tt.setup(t, mgr)

			issues := mgr.Validate(name)
			if len(issues) == 0 {
				t.Fatal("Validate() found no issues")
			}

			found := false
			for _, issue := range issues {
				if strings.Contains(issue, tt.wantHint) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Validate() issues = %v, want one containing %q", issues, tt.wantHint)
			}
		})
	}
}
