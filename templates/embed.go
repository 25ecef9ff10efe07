// Package templates provides the scaffold templates for new skills.
//
// The template files are embedded at compile time via go:embed so that
// every distribution channel (Homebrew, direct download, go install) can
// scaffold skills without requiring network access or extra files.
package templates

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed SKILL.md.tmpl
var skillMD string

//go:embed example.py.tmpl
var exampleScript string

//go:embed api_reference.md.tmpl
var apiReference string

// ExampleAsset is the static placeholder written to assets/. It carries
// no interpolation and is byte-identical across every scaffold run.
//
//go:embed example_asset.txt
var ExampleAsset string

// Context carries the values interpolated into the scaffold templates.
type Context struct {
	// Name is the hyphen-case skill identifier.
	Name string

	// Title is the display form of the identifier, e.g. "My New Skill".
	Title string
}

// Templates are parsed once at startup; the files are fixed, so a parse
// failure is a build defect and panics via template.Must.
var (
	skillMDTmpl       = template.Must(template.New("SKILL.md").Parse(skillMD))
	exampleScriptTmpl = template.Must(template.New("example.py").Parse(exampleScript))
	apiReferenceTmpl  = template.Must(template.New("api_reference.md").Parse(apiReference))
)

// RenderSkillMD renders the SKILL.md descriptor template.
func RenderSkillMD(ctx Context) (string, error) {
	return render(skillMDTmpl, ctx)
}

// RenderExampleScript renders the scripts/example.py placeholder.
func RenderExampleScript(ctx Context) (string, error) {
	return render(exampleScriptTmpl, ctx)
}

// RenderAPIReference renders the references/api_reference.md placeholder.
func RenderAPIReference(ctx Context) (string, error) {
	return render(apiReferenceTmpl, ctx)
}

func render(t *template.Template, ctx Context) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, ctx); err != nil {
		return "", err
	}
	return sb.String(), nil
}
