// Package docgen renders the GETTING_STARTED.md report written at the end
// of a scaffolding run.
package docgen

import (
	"time"

	"github.com/dev-scripter/kickoff/internal/catalog"
	"github.com/dev-scripter/kickoff/internal/project"
)

// Path is where the report lands inside the project.
const Path = "doc/GETTING_STARTED.md"

const reportTemplate = `# Getting Started with {{ .ProjectName }}

This project was scaffolded on {{ .Date }}.
Here is a summary of the configuration and your next steps.

## Project Summary

{{ range .Summary }}{{ . }}
{{ end }}{{ if .NextSteps }}
## Next Steps

{{ range $i, $step := .NextSteps }}{{ add $i 1 }}. {{ $step }}
{{ end }}{{ end }}`

// Render produces the final markdown document: fixed header, the sorted
// and deduplicated summary, and a numbered next-steps list when any exist.
func Render(projectName string, now time.Time, report *project.Report) (string, error) {
	data := struct {
		ProjectName string
		Date        string
		Summary     []string
		NextSteps   []string
	}{
		ProjectName: projectName,
		Date:        now.Format("2006-01-02"),
		Summary:     report.Summary(),
		NextSteps:   report.NextSteps(),
	}
	return catalog.Render("getting-started", reportTemplate, data)
}
