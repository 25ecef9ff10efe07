// Package main provides the list command for discovering skills.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillforge/cli/internal/skill"
	"github.com/skillforge/cli/internal/ui"
)

// listCmd discovers and lists the skills under a directory.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills under a directory",
	Long: `List the skills found under a directory.

Every immediate subdirectory containing a SKILL.md descriptor counts as
one skill. Directories whose descriptor fails to parse, or whose
frontmatter name does not match the directory name, are skipped with a
warning.

Examples:
  skillforge list --path skills/public
  skillforge list --path ~/.claude/skills --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listPath string

func init() {
	listCmd.Flags().StringVar(&listPath, "path", ".", "Directory to scan for skills")
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := skill.NewManager(expandHome(listPath))
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	if jsonOutput(cmd) {
		ui.SetQuietMode(true)
		defer ui.SetQuietMode(false)
	}

	skills, err := mgr.Discover()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("skill discovery failed")
	}

	if jsonOutput(cmd) {
		data, err := json.MarshalIndent(skills, "", "  ")
		if err != nil {
			return fmt.Errorf("encode skills: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(skills) == 0 {
		ui.PrintInfo("No skills found under %s", mgr.Root)
		ui.PrintDim("Create one with 'skillforge init <name> --path %s'", listPath)
		return nil
	}

	table := ui.Table{Headers: []string{"NAME", "DESCRIPTION", "TOOLS"}}
	for _, md := range skills {
		table.AddRow(md.Name, truncate(md.Description, 60), strings.Join(md.AllowedTools, ","))
	}
	table.Print()
	ui.Println()
	ui.PrintDim("%d skill(s) under %s", len(skills), mgr.Root)

	return nil
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
