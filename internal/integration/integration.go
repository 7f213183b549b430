// Package integration provides embedded shell integration snippets.
package integration

import (
	_ "embed"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

// Zsh contains the zsh shell integration script.
//
//go:embed zsh.sh
var Zsh string

// Render fills the integration script template with the zsh binary
// resolved from PATH.
func Render() (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", fmt.Errorf("locating zsh: %w", err)
	}

	tmpl, err := template.New("zsh").Parse(Zsh)
	if err != nil {
		return "", fmt.Errorf("parsing integration template: %w", err)
	}

	var rendered strings.Builder
	if err := tmpl.Execute(&rendered, map[string]any{
		"ZSH": filepath.ToSlash(zsh),
	}); err != nil {
		return "", fmt.Errorf("rendering integration template: %w", err)
	}

	return rendered.String(), nil
}
