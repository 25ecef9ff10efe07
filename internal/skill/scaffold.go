package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/skillforge/cli/internal/ui"
	"github.com/skillforge/cli/templates"
)

// ErrExists reports that the target skill directory already exists. The
// scaffolder never overwrites: the caller must pick another name or
// remove the existing directory.
var ErrExists = errors.New("skill directory already exists")

// Resource directory names created inside every new skill.
const (
	ScriptsDir    = "scripts"
	ReferencesDir = "references"
	AssetsDir     = "assets"
)

// Scaffold materializes a new skill directory named name under dest and
// returns its absolute path.
//
// The destination is created if missing. The skill directory itself is
// created with a plain Mkdir so that a pre-existing file or directory
// fails atomically instead of racing a separate existence check. Inside
// it, Scaffold writes SKILL.md, scripts/example.py (owner-executable),
// references/api_reference.md, and assets/example_asset.txt, in that
// order.
//
// Scaffold stops at the first failure and reports it. Artifacts already
// written are left in place; a re-run then fails with ErrExists and the
// user cleans up manually.
func Scaffold(name, dest string) (string, error) {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return "", fmt.Errorf("resolve destination path %s: %w", dest, err)
	}
	skillDir := filepath.Join(absDest, name)

	if err := os.MkdirAll(absDest, 0o755); err != nil {
		return "", fmt.Errorf("create destination directory: %w", err)
	}
	if err := os.Mkdir(skillDir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, skillDir)
		}
		return "", fmt.Errorf("create skill directory: %w", err)
	}
	ui.PrintDim("Created skill directory: %s", skillDir)

	tctx := templates.Context{Name: name, Title: Title(name)}

	skillMD, err := templates.RenderSkillMD(tctx)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", SkillFileName, err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, SkillFileName), []byte(skillMD), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", SkillFileName, err)
	}
	ui.PrintDim("Created %s", SkillFileName)

	if err := writeExampleScript(skillDir, tctx); err != nil {
		return "", err
	}
	if err := writeExampleReference(skillDir, tctx); err != nil {
		return "", err
	}
	if err := writeExampleAsset(skillDir); err != nil {
		return "", err
	}

	return skillDir, nil
}

// writeExampleScript creates scripts/example.py with the executable bit
// set. The chmod after the write forces 0755 regardless of umask.
func writeExampleScript(skillDir string, tctx templates.Context) error {
	dir := filepath.Join(skillDir, ScriptsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", ScriptsDir, err)
	}

	content, err := templates.RenderExampleScript(tctx)
	if err != nil {
		return fmt.Errorf("render example script: %w", err)
	}

	path := filepath.Join(dir, "example.py")
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return fmt.Errorf("write %s/example.py: %w", ScriptsDir, err)
	}
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("mark %s/example.py executable: %w", ScriptsDir, err)
	}
	ui.PrintDim("Created %s/example.py", ScriptsDir)
	return nil
}

func writeExampleReference(skillDir string, tctx templates.Context) error {
	dir := filepath.Join(skillDir, ReferencesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", ReferencesDir, err)
	}

	content, err := templates.RenderAPIReference(tctx)
	if err != nil {
		return fmt.Errorf("render example reference: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "api_reference.md"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s/api_reference.md: %w", ReferencesDir, err)
	}
	ui.PrintDim("Created %s/api_reference.md", ReferencesDir)
	return nil
}

func writeExampleAsset(skillDir string) error {
	dir := filepath.Join(skillDir, AssetsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", AssetsDir, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "example_asset.txt"), []byte(templates.ExampleAsset), 0o644); err != nil {
		return fmt.Errorf("write %s/example_asset.txt: %w", AssetsDir, err)
	}
	ui.PrintDim("Created %s/example_asset.txt", AssetsDir)
	return nil
}
