package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dev-scripter/kickoff/internal/project"
)

var singleLanguageCI = map[project.Language]string{
	project.Python: `name: Python CI
on: [push, pull_request]
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
    - uses: actions/checkout@v4
    - name: Set up Python
      uses: actions/setup-python@v4
      with:
        python-version: '3.11'
    - name: Install dependencies
      run: |
        python -m pip install --upgrade pip
        pip install -r requirements.txt
    - name: Test with pytest
      run: pip install pytest && pytest
`,
	project.CPP: `name: C++ CI with CMake
on: [push, pull_request]
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
    - uses: actions/checkout@v4
    - name: Configure CMake
      run: cmake -B ${{github.workspace}}/build -DCMAKE_BUILD_TYPE=Release
    - name: Build
      run: cmake --build ${{github.workspace}}/build --config Release
    - name: Test
      working-directory: ${{github.workspace}}/build
      run: ctest -C Release
`,
	project.Rust: `name: Rust CI
on: [push, pull_request]
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
    - uses: actions/checkout@v4
    - name: Build
      run: cargo build --verbose
    - name: Run tests
      run: cargo test --verbose
`,
	project.Flutter: `name: Flutter CI
on: [push, pull_request]
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
    - uses: actions/checkout@v4
    - uses: subosito/flutter-action@v2
      with:
        channel: 'stable'
    - name: Install dependencies
      run: flutter pub get
    - name: Analyze project
      run: flutter analyze
    - name: Run tests
      run: flutter test
`,
}

type ciStep struct {
	Name             string `yaml:"name,omitempty"`
	Uses             string `yaml:"uses,omitempty"`
	Run              string `yaml:"run,omitempty"`
	WorkingDirectory string `yaml:"working-directory,omitempty"`
}

type ciJob struct {
	RunsOn string   `yaml:"runs-on"`
	Steps  []ciStep `yaml:"steps"`
}

type ciWorkflow struct {
	Name string           `yaml:"name"`
	On   []string         `yaml:"on,flow"`
	Jobs map[string]ciJob `yaml:"jobs"`
}

// CIWorkflow returns the GitHub Actions workflow body. Single-language
// projects get the language's dedicated workflow; multi-language projects
// get one generated job with a build step per component, in selection
// order.
func CIWorkflow(s *project.Settings, components []project.Component) (string, error) {
	if !s.Multi() {
		if body, ok := singleLanguageCI[s.Languages[0]]; ok {
			return body, nil
		}
		return "# No CI workflow generated for this language yet.\n", nil
	}

	steps := []ciStep{{Uses: "actions/checkout@v4"}}
	for _, c := range components {
		steps = append(steps, ciStep{
			Name:             fmt.Sprintf("Build %s", c.Dir),
			Run:              c.Language.BuildCommand(),
			WorkingDirectory: c.Dir,
		})
	}
	wf := ciWorkflow{
		Name: "Project CI",
		On:   []string{"push", "pull_request"},
		Jobs: map[string]ciJob{"build": {RunsOn: "ubuntu-latest", Steps: steps}},
	}
	out, err := yaml.Marshal(wf)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
