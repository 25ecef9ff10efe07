package templates

import (
	"strings"
	"testing"
)

func TestRenderSkillMD(t *testing.T) {
	out, err := RenderSkillMD(Context{Name: "my-new-skill", Title: "My New Skill"})
	if err != nil {
		t.Fatalf("RenderSkillMD() error = %v", err)
	}

	if !strings.HasPrefix(out, "---\nname: my-new-skill\n") {
		t.Errorf("frontmatter does not open with the skill name:\n%s", out)
	}
	if !strings.Contains(out, "# My New Skill") {
		t.Errorf("heading missing the title:\n%s", out)
	}
}

func TestRenderExampleScript(t *testing.T) {
	out, err := RenderExampleScript(Context{Name: "my-new-skill", Title: "My New Skill"})
	if err != nil {
		t.Fatalf("RenderExampleScript() error = %v", err)
	}

	if !strings.HasPrefix(out, "#!/usr/bin/env python3") {
		t.Errorf("script missing shebang:\n%s", out)
	}
	if !strings.Contains(out, "my-new-skill") {
		t.Errorf("script missing the skill name:\n%s", out)
	}
}

func TestRenderAPIReference(t *testing.T) {
	out, err := RenderAPIReference(Context{Name: "my-new-skill", Title: "My New Skill"})
	if err != nil {
		t.Fatalf("RenderAPIReference() error = %v", err)
	}

	if !strings.Contains(out, "My New Skill") {
		t.Errorf("reference missing the title:\n%s", out)
	}
}

func TestExampleAssetIsStatic(t *testing.T) {
	if ExampleAsset == "" {
		t.Fatal("ExampleAsset is empty")
	}
	if strings.Contains(ExampleAsset, "{{") {
		t.Error("ExampleAsset must carry no template actions")
	}
}
