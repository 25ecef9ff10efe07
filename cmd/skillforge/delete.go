// Package main provides the delete command for removing skills.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/skillforge/cli/internal/skill"
	"github.com/skillforge/cli/internal/ui"
)

// deleteCmd removes a skill directory and everything inside it.
var deleteCmd = &cobra.Command{
	Use:   "delete <skill-name>",
	Short: "Remove a skill directory",
	Long: `Remove a skill directory and all of its files.

Asks for confirmation before deleting. Non-interactive invocations
(stdin is not a terminal) must pass --force.

Examples:
  skillforge delete my-new-skill --path skills/public
  skillforge delete my-new-skill --path skills/public --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var (
	deletePath  string
	deleteForce bool
)

func init() {
	deleteCmd.Flags().StringVar(&deletePath, "path", ".", "Directory containing the skill")
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Delete without confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	mgr, err := skill.NewManager(expandHome(deletePath))
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	if !deleteForce {
		stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		if !stdinTTY {
			ui.PrintError("Refusing to delete without confirmation — pass --force in non-interactive use.")
			return fmt.Errorf("confirmation required")
		}

		confirmed, err := ui.PromptConfirm(fmt.Sprintf("Delete skill '%s' and all of its files?", name), false)
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if !confirmed {
			ui.PrintInfo("Aborted.")
			return nil
		}
	}

	if err := mgr.Delete(name); err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("skill deletion failed")
	}

	ui.PrintSuccess("Deleted skill '%s' from %s", name, mgr.Root)
	return nil
}
