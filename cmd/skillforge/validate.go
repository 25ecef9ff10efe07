// Package main provides the validate command for checking skills against
// the naming and structure contract.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/skillforge/cli/internal/skill"
	"github.com/skillforge/cli/internal/ui"
)

// validateCmd checks one skill (or all skills under a root) against the
// structural contract that init deliberately does not enforce.
var validateCmd = &cobra.Command{
	Use:   "validate [<skill-name>]",
	Short: "Check skills against the naming and structure contract",
	Long: `Check skills against the naming and structure contract:
a hyphen-case name of at most 40 characters matching the directory name,
a SKILL.md with parseable YAML frontmatter, and a non-empty description.

Pass a skill name to check one skill, or --all to check every
subdirectory of --path. With --watch, validation re-runs whenever the
skill tree changes.

Examples:
  skillforge validate my-new-skill --path skills/public
  skillforge validate --all --path skills/public
  skillforge validate --all --path skills/public --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var (
	validatePath  string
	validateAll   bool
	validateWatch bool
)

func init() {
	validateCmd.Flags().StringVar(&validatePath, "path", ".", "Directory containing the skill(s)")
	validateCmd.Flags().BoolVar(&validateAll, "all", false, "Validate every skill under --path")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Re-run validation when the skill tree changes")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !validateAll {
		ui.PrintError("Pass a skill name or --all.")
		return fmt.Errorf("nothing to validate")
	}
	if len(args) == 1 && validateAll {
		ui.PrintError("--all cannot be combined with a skill name.")
		return fmt.Errorf("conflicting selectors")
	}

	mgr, err := skill.NewManager(expandHome(validatePath))
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	ok := runValidation(mgr, args)

	if validateWatch {
		return watchValidate(mgr, args)
	}

	if !ok {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// runValidation validates the selected skills and prints one line per
// skill plus its issues. Returns false if any skill failed.
func runValidation(mgr *skill.Manager, args []string) bool {
	targets, err := validationTargets(mgr, args)
	if err != nil {
		ui.PrintError("%v", err)
		return false
	}

	if len(targets) == 0 {
		ui.PrintInfo("No skills found under %s", mgr.Root)
		return true
	}

	ok := true
	for _, name := range targets {
		issues := mgr.Validate(name)
		if len(issues) == 0 {
			ui.PrintSuccess("%s", name)
			continue
		}

		ok = false
		ui.PrintError("%s", name)
		for _, issue := range issues {
			ui.PrintDim("  - %s", issue)
		}
	}
	return ok
}

// validationTargets resolves the skill names to validate: the explicit
// argument, or every subdirectory of the root when --all is set.
func validationTargets(mgr *skill.Manager, args []string) ([]string, error) {
	if len(args) == 1 {
		return []string{args[0]}, nil
	}

	entries, err := os.ReadDir(mgr.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read skills directory %s: %w", mgr.Root, err)
	}

	var targets []string
	for _, entry := range entries {
		if entry.IsDir() {
			targets = append(targets, entry.Name())
		}
	}
	return targets, nil
}

// watchValidate blocks and re-runs validation whenever the skill tree
// changes. Events are debounced so editors that write in bursts trigger
// a single re-run.
func watchValidate(mgr *skill.Manager, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		ui.PrintError("Failed to start watcher: %v", err)
		return err
	}
	defer watcher.Close()

	addWatches := func() {
		_ = watcher.Add(mgr.Root)
		entries, err := os.ReadDir(mgr.Root)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				_ = watcher.Add(filepath.Join(mgr.Root, entry.Name()))
			}
		}
	}
	addWatches()

	ui.Println()
	ui.PrintDim("Watching %s for changes — press Ctrl-C to stop", mgr.Root)

	var pending <-chan time.Time
	for {
		select {
		case event, open := <-watcher.Events:
			if !open {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(200 * time.Millisecond)

		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			ui.PrintWarning("Watch error: %v", err)

		case <-pending:
			pending = nil
			addWatches()
			ui.Println()
			runValidation(mgr, args)
		}
	}
}
