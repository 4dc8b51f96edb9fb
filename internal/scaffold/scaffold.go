package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dev-scripter/kickoff/internal/catalog"
	"github.com/dev-scripter/kickoff/internal/execx"
	"github.com/dev-scripter/kickoff/internal/project"
	"github.com/dev-scripter/kickoff/internal/ui"
)

// Command is an external invocation deferred until the staged tree has
// been flushed to disk. Dir is relative to the project root.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// Env carries everything a language scaffolder needs: the prompt layer,
// the runner for tool probes, the staging area, the report, and a place
// to defer external commands.
type Env struct {
	UI       *ui.UI
	Runner   execx.Runner
	Stage    *Stage
	Report   *project.Report
	Settings *project.Settings

	deferred []Command
}

// Defer queues commands for execution after the flush.
func (e *Env) Defer(cmds ...Command) {
	e.deferred = append(e.deferred, cmds...)
}

// Deferred returns the queued commands in scaffold order.
func (e *Env) Deferred() []Command {
	return e.deferred
}

// toolAvailable probes for a tool by running its version command. The
// probe needs no project directory, so it runs during scaffolding; a
// missing tool skips the component before any prompt or summary line.
func (e *Env) toolAvailable(ctx context.Context, name string, args ...string) bool {
	_, err := execx.Attempt(ctx, e.Runner, e.UI.Out(), execx.Options{}, name, args...)
	return err == nil
}

// Component scaffolds one language component: it stages the starter files
// and defers the language's external init commands. The language dispatch
// is exhaustive over the project.Language enum.
func Component(ctx context.Context, env *Env, c project.Component) error {
	env.UI.Header("Scaffolding " + c.Language.String() + " Component")

	switch c.Language {
	case project.Python:
		return pythonComponent(env, c)
	case project.CPP:
		return cppComponent(env, c)
	case project.Rust:
		return rustComponent(ctx, env, c)
	case project.Flutter:
		return flutterComponent(ctx, env, c)
	}
	return errors.New("unknown language: " + c.Language.String())
}

// in joins a component-relative path. Dir "." means the project root.
func in(c project.Component, parts ...string) string {
	return path.Join(append([]string{c.Dir}, parts...)...)
}

func pythonComponent(env *Env, c project.Component) error {
	env.Defer(Command{Name: "python3", Args: []string{"-m", "venv", "venv"}, Dir: c.Dir})
	env.Report.Log("* **Python Setup:** `venv` with `requirements.txt`.")

	reqs := []string{}
	usePytest, err := env.UI.Confirm("Add 'pytest' for testing?")
	if err != nil {
		return err
	}
	if usePytest {
		reqs = append(reqs, "pytest")
		if err := env.Stage.WriteFile(in(c, "tests", "test_sample.py"), catalog.PythonSampleTest); err != nil {
			return err
		}
	}

	pkgs, err := env.UI.SelectMany("Select common packages to add:", []string{"pydantic", "requests", "rich"})
	if err != nil {
		return err
	}
	reqs = append(reqs, pkgs...)

	if len(reqs) > 0 {
		sort.Strings(reqs)
		if err := env.Stage.WriteFile(in(c, "requirements.txt"), strings.Join(reqs, "\n")+"\n"); err != nil {
			return err
		}
		env.Report.Log("* **Python Packages:** `%s`.", strings.Join(reqs, ", "))
		env.Report.NextStep("Install Python dependencies: `source venv/bin/activate` followed by `pip install -r requirements.txt`.")
	}
	return nil
}

func cppComponent(env *Env, c project.Component) error {
	if err := env.Stage.WriteFile(in(c, "src", "main.cpp"), catalog.CPPMain); err != nil {
		return err
	}
	if err := env.Stage.WriteFile(in(c, "include", ".gitkeep"), ""); err != nil {
		return err
	}

	framework, err := env.UI.SelectOne("Select a C++ test framework", []string{"None", "Qt Test", "GoogleTest"})
	if err != nil {
		return err
	}

	flavor := catalog.CPPTestNone
	switch framework {
	case "Qt Test":
		flavor = catalog.CPPTestQt
		env.Report.Log("* **C++ Setup:** CMake with Qt Test support.")
		if err := env.Stage.WriteFile(in(c, "tests", "test_main.cpp"), catalog.QtTestMain); err != nil {
			return err
		}
		env.Report.NextStep("Ensure you have Qt 6 installed and your environment is configured for CMake to find it.")
	case "GoogleTest":
		flavor = catalog.CPPTestGoogleTest
		env.Report.Log("* **C++ Setup:** CMake with GoogleTest.")
		if err := env.Stage.WriteFile(in(c, "tests", "test_main.cpp"), catalog.GoogleTestMain); err != nil {
			return err
		}
		env.Report.NextStep("Run `ctest` from your build directory to execute tests.")
	}

	cmake, err := catalog.CMakeLists(env.Settings.ProjectName, flavor)
	if err != nil {
		return err
	}
	return env.Stage.WriteFile(in(c, "CMakeLists.txt"), cmake)
}

func rustComponent(ctx context.Context, env *Env, c project.Component) error {
	if !env.toolAvailable(ctx, "rustc", "--version") {
		env.UI.Printf("  Skipping Rust setup.\n")
		return nil
	}

	cmds := []Command{{Name: "cargo", Args: []string{"init"}, Dir: c.Dir}}
	env.Report.Log("* **Rust Setup:** Initialized with `cargo init`.")

	crates, err := env.UI.SelectMany("Select common crates to add:", []string{
		"serde --features derive",
		"tokio --features full",
		"anyhow",
		"clap --features derive",
	})
	if err != nil {
		return err
	}
	if len(crates) > 0 {
		names := make([]string, len(crates))
		for i, crate := range crates {
			words := strings.Fields(crate)
			names[i] = words[0]
			cmds = append(cmds, Command{
				Name: "cargo",
				Args: append([]string{"add"}, words...),
				Dir:  c.Dir,
			})
		}
		env.Report.Log("* **Rust Crates:** `%s`.", strings.Join(names, ", "))
		env.Report.NextStep("Run `cargo build` to build the project.")
	}
	env.Defer(cmds...)
	return nil
}

func flutterComponent(ctx context.Context, env *Env, c project.Component) error {
	if !env.toolAvailable(ctx, "flutter", "--version") {
		env.UI.Printf("  Skipping Flutter setup.\n")
		return nil
	}

	// flutter create materializes the component directory itself, so
	// nothing is staged for it; all work is deferred.
	cmds := []Command{{Name: "flutter", Args: []string{"create", c.Dir}}}
	env.Report.Log("* **Flutter Setup:** Initialized with `flutter create`.")

	pkgs, err := env.UI.SelectMany("Select common packages to add:", []string{"http", "provider", "sqflite", "path_provider"})
	if err != nil {
		return err
	}
	if len(pkgs) > 0 {
		for _, pkg := range pkgs {
			cmds = append(cmds, Command{
				Name: "flutter",
				Args: []string{"pub", "add", pkg},
				Dir:  c.Dir,
			})
		}
		env.Report.Log("* **Flutter Packages:** `%s`.", strings.Join(pkgs, ", "))
		env.Report.NextStep("Run `flutter run` to start your application.")
	}
	env.Defer(cmds...)
	return nil
}

// RunDeferred executes the deferred commands against the flushed project
// root. Each command's working directory is created first, since a
// component may stage no files of its own. A failed command is reported
// and skipped; the run continues with the next one.
func RunDeferred(ctx context.Context, runner execx.Runner, logw io.Writer, root string, cmds []Command) {
	for _, cmd := range cmds {
		dir := root
		if cmd.Dir != "" && cmd.Dir != "." {
			dir = filepath.Join(root, filepath.FromSlash(cmd.Dir))
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(logw, "  [error] cannot create %s: %v\n", dir, err)
			continue
		}
		if _, err := execx.Attempt(ctx, runner, logw, execx.Options{Dir: dir}, cmd.Name, cmd.Args...); err != nil {
			continue
		}
	}
}
