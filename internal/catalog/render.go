// Package catalog generates the static content of scaffolded artifacts:
// ignore rules, editor settings, CI workflows, container and starter files.
// Functions here are pure: (language, settings) in, text out.
package catalog

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Render executes a template body with sprig functions available.
func Render(name, body string, data interface{}) (string, error) {
	tpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(body)
	if err != nil {
		return "", fmt.Errorf("cannot parse %s template: %w", name, err)
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("cannot render %s template: %w", name, err)
	}
	return out.String(), nil
}
