// Package main provides the init command for scaffolding new skills.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/skillforge/cli/internal/skill"
	"github.com/skillforge/cli/internal/ui"
)

// initCmd scaffolds a new skill directory from the embedded templates.
var initCmd = &cobra.Command{
	Use:   "init <skill-name>",
	Short: "Scaffold a new skill directory",
	Long: `Scaffold a new skill directory from the built-in templates.

Creates <path>/<skill-name>/ containing a SKILL.md descriptor plus
example files in scripts/, references/, and assets/. The target
directory must not already exist; nothing is ever overwritten.

Skill name requirements:
  - Hyphen-case identifier (e.g. 'data-analyzer')
  - Lowercase letters, digits, and hyphens only
  - Max 40 characters
  - Must match the directory name exactly

Names that break these rules are accepted with a warning; run
'skillforge validate' to enforce them.

Examples:
  skillforge init my-new-skill --path skills/public
  skillforge init my-api-helper --path skills/private
  skillforge init custom-skill --path /custom/location`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var initPath string

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "Directory to create the skill under (required)")
	_ = initCmd.MarkFlagRequired("path")
}

// runInit materializes the skill directory and prints the next steps.
//
// The naming contract is deliberately not enforced here: a warning is
// printed and scaffolding proceeds, so existing loose names keep working.
func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	ui.PrintInfo("Initializing skill: %s", name)
	ui.PrintInfo("Location: %s", initPath)
	ui.Println()

	if err := skill.ValidateName(name); err != nil {
		ui.PrintWarning("Name does not follow the naming contract: %v", err)
		if suggestion := skill.SuggestName(name); suggestion != "" && suggestion != name {
			ui.PrintDim("  A conforming name would be '%s'", suggestion)
		}
		ui.PrintWarning("Continuing anyway — 'skillforge validate' will flag this skill.")
	}

	log.Debug("Scaffolding skill", "name", name, "path", initPath)

	dir, err := skill.Scaffold(name, expandHome(initPath))
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("skill initialization failed")
	}

	ui.Println()
	ui.PrintSuccess("Skill '%s' initialized at %s", name, dir)
	ui.Println()
	ui.PrintInfo("Next steps:")
	ui.PrintDim("  1. Edit SKILL.md to complete the TODO items and update the description")
	ui.PrintDim("  2. Customize or delete the example files in scripts/, references/, and assets/")
	ui.PrintDim("  3. Run 'skillforge validate %s --path %s' to check the skill structure", name, initPath)

	return nil
}
