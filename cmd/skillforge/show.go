// Package main provides the show command for inspecting a skill.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillforge/cli/internal/skill"
	"github.com/skillforge/cli/internal/ui"
)

// showCmd prints one skill's metadata and instruction body.
var showCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Print a skill's metadata and instructions",
	Long: `Print a skill's frontmatter metadata and Markdown instructions.

Examples:
  skillforge show my-new-skill --path skills/public
  skillforge show my-new-skill --path skills/public --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showPath string

func init() {
	showCmd.Flags().StringVar(&showPath, "path", ".", "Directory containing the skill")
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	mgr, err := skill.NewManager(expandHome(showPath))
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	sk, err := mgr.Load(name)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("skill not loadable")
	}

	if jsonOutput(cmd) {
		data, err := json.MarshalIndent(sk, "", "  ")
		if err != nil {
			return fmt.Errorf("encode skill: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(ui.TitleStyle.Render(skill.Title(sk.Name)))
	ui.PrintDim("%s", sk.Path)
	ui.Println()
	ui.PrintInfo("%s", sk.Description)
	if len(sk.AllowedTools) > 0 && !ui.IsQuiet() {
		fmt.Printf("%s %s\n", ui.DimStyle.Render("Allowed tools:"), ui.AccentStyle.Render(strings.Join(sk.AllowedTools, ", ")))
	}
	if sk.Model != "" {
		ui.PrintDim("Model: %s", sk.Model)
	}
	if sk.Instructions != "" {
		ui.Println()
		fmt.Println(sk.Instructions)
	}

	return nil
}
