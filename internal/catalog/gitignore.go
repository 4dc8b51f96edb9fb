package catalog

import (
	"strings"

	"github.com/dev-scripter/kickoff/internal/project"
)

const commonIgnore = `# General
.DS_Store
*.swp
*.swo
.env
.idea/
build/
dist/

# Kickoff config
/.kickoff/
`

var languageIgnore = map[project.Language]string{
	project.Python: `# Python
__pycache__/
*.pyc
*.pyo
venv/
.pytest_cache/
`,
	project.CPP: `# C++
*.o
*.out
*.exe
*.dll
*.so
*.a
CMakeLists.txt.user
**/CMakeCache.txt
**/CMakeFiles/
`,
	project.Rust: `# Rust
/target/
`,
	project.Flutter: `# Flutter
.dart_tool/
.packages
`,
}

// Gitignore returns the ignore-file body for the selected languages: the
// common rules followed by one block per language. Blocks appear in enum
// order and each at most once, whatever the selection order was.
func Gitignore(langs []project.Language) string {
	var b strings.Builder
	b.WriteString(commonIgnore)

	selected := map[project.Language]bool{}
	for _, l := range langs {
		selected[l] = true
	}
	for _, l := range project.All() {
		if selected[l] {
			b.WriteString("\n")
			b.WriteString(languageIgnore[l])
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
