package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo for the Skillforge CLI.
const banner = `
  ███████╗ ██████╗ ██████╗  ██████╗ ███████╗
  ██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
  █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
  ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
  ██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
  ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝`

// tagline is the product tagline.
const tagline = "Craft agent skills from your terminal"

// PrintBanner prints the Skillforge banner with version info.
func PrintBanner(version string) {
	if quietMode {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Ember).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))
	fmt.Println()

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)
	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println()
}

// GetHelpText returns the curated command reference shown by
// `skillforge --help`.
func GetHelpText() string {
	ember := lipgloss.NewStyle().Foreground(Ember).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return fmt.Sprintf(`%s

%s
  %s   Scaffold a new skill directory
  %s           List skills under a directory
  %s             Print a skill's metadata and instructions

%s
  %s    Check skills against the naming and structure contract
  %s      Remove a skill directory

%s
  Skill names are hyphen-case: lowercase letters, digits, and hyphens,
  at most 40 characters, matching the directory name exactly.`,
		dim.Render(tagline+"."),
		ember.Render("Create:"),
		ember.Render("skillforge init <name> --path <dir>"),
		ember.Render("skillforge list --path <dir>"),
		ember.Render("skillforge show <name>"),
		ember.Render("Maintain:"),
		ember.Render("skillforge validate --all"),
		ember.Render("skillforge delete <name>"),
		ember.Render("Naming:"),
	)
}
