package catalog

import (
	"encoding/json"
	"sort"

	"github.com/dev-scripter/kickoff/internal/project"
)

var languageExtensions = map[project.Language][]string{
	project.Python:  {"ms-python.python", "ms-python.vscode-pylance", "charliermarsh.ruff"},
	project.CPP:     {"ms-vscode.cpptools", "ms-vscode.cmake-tools"},
	project.Rust:    {"rust-lang.rust-analyzer", "vadimcn.vscode-lldb"},
	project.Flutter: {"Dart-Code.dart-code", "Dart-Code.flutter"},
}

var aiToolExtensions = map[string][]string{
	"Gemini":         {"Google.gemini"},
	"Cursor":         {"cursor.cursor-vscode"},
	"Claude":         {"Anthropic.anthropic-vscode"},
	"GitHub Copilot": {"github.copilot", "github.copilot-chat"},
}

// VSCodeExtensions renders .vscode/extensions.json: the base set, one set
// per selected AI tool, and one set per selected language, as a sorted
// union. The result is the same for any permutation of the language set.
func VSCodeExtensions(s *project.Settings) (string, error) {
	set := map[string]bool{
		"github.vscode-pull-request-github": true,
		"ms-vscode.remote-containers":       true,
	}
	for _, tool := range s.AITools {
		for _, ext := range aiToolExtensions[tool] {
			set[ext] = true
		}
	}
	for _, lang := range s.Languages {
		for _, ext := range languageExtensions[lang] {
			set[ext] = true
		}
	}

	recommendations := make([]string, 0, len(set))
	for ext := range set {
		recommendations = append(recommendations, ext)
	}
	sort.Strings(recommendations)

	out, err := json.MarshalIndent(map[string][]string{"recommendations": recommendations}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
