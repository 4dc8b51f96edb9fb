// Package wizard drives a scaffolding run end to end: configure, scaffold,
// tool configuration, documentation. The sequence is linear; once a phase
// completes there is no backtracking.
package wizard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dev-scripter/kickoff/internal/catalog"
	"github.com/dev-scripter/kickoff/internal/config"
	"github.com/dev-scripter/kickoff/internal/docgen"
	"github.com/dev-scripter/kickoff/internal/execx"
	"github.com/dev-scripter/kickoff/internal/mcp"
	"github.com/dev-scripter/kickoff/internal/project"
	"github.com/dev-scripter/kickoff/internal/scaffold"
	"github.com/dev-scripter/kickoff/internal/ui"
	"github.com/dev-scripter/kickoff/internal/vcs"
)

// Wizard holds a run's collaborators. Everything is injected so tests can
// substitute a scripted runner and a virtual terminal.
type Wizard struct {
	UI         *ui.UI
	Runner     execx.Runner
	ConfigPath string // empty means config.DefaultPath()
	OutputDir  string // parent directory of the new project
	Now        func() time.Time
	InitRepo   func(path string) error
}

// New returns a Wizard bound to the real terminal, process runner, and
// clock.
func New(outputDir string) *Wizard {
	return &Wizard{
		UI:        ui.New(),
		Runner:    execx.NewSystem(),
		OutputDir: outputDir,
		Now:       time.Now,
		InitRepo:  vcs.InitRepo,
	}
}

// Run executes the whole interactive session. It returns nil both on
// success and on the first-run config creation (which only writes the
// config file and tells the user to edit it).
func (w *Wizard) Run(ctx context.Context) error {
	cfg, firstRun, err := w.loadConfig()
	if err != nil || firstRun {
		return err
	}

	settings, err := w.gatherSettings(cfg)
	if err != nil {
		return err
	}

	return w.materialize(ctx, settings)
}

// materialize turns a completed settings record into the project on disk:
// stage, flush, external side effects, documentation.
func (w *Wizard) materialize(ctx context.Context, settings *project.Settings) error {
	targetDir := filepath.Join(w.OutputDir, settings.ProjectName)
	if _, err := os.Stat(targetDir); err == nil {
		return fmt.Errorf("%w: %s", scaffold.ErrTargetExists, targetDir)
	}

	report := &project.Report{}
	report.Log("* **Project:** `%s`", settings.ProjectName)
	report.Log("* **Language:** %s", strings.Join(project.Names(settings.Languages), ", "))

	stage := scaffold.NewStage()
	env := &scaffold.Env{
		UI:       w.UI,
		Runner:   w.Runner,
		Stage:    stage,
		Report:   report,
		Settings: settings,
	}

	w.UI.Header("Creating Project: " + settings.ProjectName)

	if err := stage.WriteFile(".gitignore", catalog.Gitignore(settings.Languages)); err != nil {
		return err
	}

	if err := w.scaffoldComponents(ctx, env, settings); err != nil {
		return err
	}

	if err := w.configureTooling(stage, settings, report); err != nil {
		return err
	}

	if len(settings.AITools) > 0 {
		if err := mcp.Configure(w.UI, stage, settings, report); err != nil {
			return err
		}
	}

	if err := stage.Flush(targetDir, w.UI.Out()); err != nil {
		return err
	}

	// components that staged nothing, like a bare Rust one, still get
	// their directory before the init commands run in it
	for _, c := range settings.Components {
		if c.Dir == "" || c.Dir == "." {
			continue
		}
		if err := os.MkdirAll(filepath.Join(targetDir, filepath.FromSlash(c.Dir)), 0755); err != nil {
			return err
		}
	}

	if err := w.InitRepo(targetDir); err != nil {
		fmt.Fprintf(w.UI.Out(), "  [error] %v\n", err)
	}

	scaffold.RunDeferred(ctx, w.Runner, w.UI.Out(), targetDir, env.Deferred())

	if settings.UseGitHub {
		w.createRemote(ctx, settings, targetDir, report)
	}

	return w.writeDocumentation(settings, targetDir, report)
}

// loadConfig reads the persisted user configuration, creating it with
// placeholders on first run, and lazily completing the GitHub username.
func (w *Wizard) loadConfig() (*config.Config, bool, error) {
	path := w.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, false, err
		}
		path = p
	}

	cfg, created, err := config.Load(path)
	if err != nil {
		return nil, false, err
	}
	if created {
		w.UI.Printf("First time setup: created config file at %s\n", path)
		w.UI.Printf("Please edit this file to add your details and API keys, then run kickoff again.\n")
		return cfg, true, nil
	}

	if cfg.User.GitHubUsername == "" {
		w.UI.Printf("Configuration incomplete.\n")
		user, err := w.UI.Text("Please enter your GitHub username (for creating repos)", "")
		if err != nil {
			return nil, false, err
		}
		if user != "" {
			cfg.User.GitHubUsername = user
			if err := config.Save(path, cfg); err != nil {
				return nil, false, err
			}
		}
	}
	return cfg, false, nil
}

// gatherSettings runs the prompt sequence that fills the settings record.
func (w *Wizard) gatherSettings(cfg *config.Config) (*project.Settings, error) {
	w.UI.Header("New Project Setup")

	name, err := w.UI.Text("Project Name", "my-new-project")
	if err != nil {
		return nil, err
	}

	var langs []project.Language
	for len(langs) == 0 {
		names, err := w.UI.SelectMany("Select Project Language(s)", project.Names(project.All()))
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			w.UI.Printf("  Select at least one language.\n")
			continue
		}
		for _, n := range names {
			l, err := project.ParseLanguage(n)
			if err != nil {
				return nil, err
			}
			langs = append(langs, l)
		}
	}

	useDocker, err := w.UI.Confirm("Add Docker configuration (Dockerfile)?")
	if err != nil {
		return nil, err
	}
	useCI, err := w.UI.Confirm("Add basic GitHub Actions CI workflow?")
	if err != nil {
		return nil, err
	}
	useGitHub, err := w.UI.Confirm("Initialize on GitHub (requires 'gh' CLI)?")
	if err != nil {
		return nil, err
	}
	aiTools, err := w.UI.SelectMany("Configure for which AI tools?", []string{"Gemini", "Cursor", "Claude", "GitHub Copilot"})
	if err != nil {
		return nil, err
	}

	return &project.Settings{
		ProjectName: name,
		Languages:   langs,
		UseDocker:   useDocker,
		UseCI:       useCI,
		UseGitHub:   useGitHub,
		AITools:     aiTools,
		Config:      cfg,
	}, nil
}

// scaffoldComponents scaffolds each language in selection order. For
// multi-language projects each component gets its own subdirectory; a name
// already claimed by an earlier component is rejected and asked again.
func (w *Wizard) scaffoldComponents(ctx context.Context, env *scaffold.Env, settings *project.Settings) error {
	for _, lang := range settings.Languages {
		dir := "."
		if settings.Multi() {
			for {
				d, err := w.UI.Text(fmt.Sprintf("Directory for the %s component", lang), lang.Slug())
				if err != nil {
					return err
				}
				if d == "" || settings.ClaimedDir(d) {
					w.UI.Printf("  Directory %q is already taken; choose another name.\n", d)
					continue
				}
				dir = d
				break
			}
		}

		component := project.Component{Language: lang, Dir: dir}
		settings.AddComponent(component)
		if err := scaffold.Component(ctx, env, component); err != nil {
			return err
		}
	}

	if settings.Multi() {
		if err := env.Stage.WriteExecutable("build.sh", catalog.BuildScript(settings.Components)); err != nil {
			return err
		}
		env.Report.Log("* **Build:** Generated top-level `build.sh` invoking every component.")
		env.Report.NextStep("Run `./build.sh` to build all components in order.")
	}
	return nil
}

// configureTooling stages the project-wide tooling artifacts.
func (w *Wizard) configureTooling(stage *scaffold.Stage, settings *project.Settings, report *project.Report) error {
	w.UI.Header("Configuring Tooling")

	extensions, err := catalog.VSCodeExtensions(settings)
	if err != nil {
		return err
	}
	if err := stage.WriteFile(".vscode/extensions.json", extensions); err != nil {
		return err
	}
	report.Log("* **IDE:** Generated `.vscode/extensions.json`.")
	report.NextStep("If using VS Code, open the project and install recommended extensions when prompted.")

	if settings.UseDocker {
		if err := stage.WriteFile("Dockerfile", catalog.Dockerfile(settings)); err != nil {
			return err
		}
		report.Log("* **Containerization:** Added a placeholder `Dockerfile`.")
	}

	if settings.UseCI {
		workflow, err := catalog.CIWorkflow(settings, settings.Components)
		if err != nil {
			return err
		}
		if err := stage.WriteFile(".github/workflows/ci.yml", workflow); err != nil {
			return err
		}
		report.Log("* **CI/CD:** Added basic GitHub Actions workflow.")
	}

	if settings.HasAITool("GitHub Copilot") {
		copilot, err := catalog.CopilotConfig()
		if err != nil {
			return err
		}
		if err := stage.WriteFile(".github/copilot/config.yml", copilot); err != nil {
			return err
		}
		report.Log("* **GitHub Copilot:** Added `.github/copilot/config.yml` to exclude files.")
	}
	return nil
}

// createRemote creates the private GitHub repository when a username is
// configured; a gateway failure is already reported and just skips the
// step.
func (w *Wizard) createRemote(ctx context.Context, settings *project.Settings, targetDir string, report *project.Report) {
	user := settings.Config.User.GitHubUsername
	if user == "" {
		w.UI.Printf("  [skipped] GitHub repo creation requires a username in the config.\n")
		return
	}
	if err := vcs.CreateRemote(ctx, w.Runner, w.UI.Out(), user, settings.ProjectName, targetDir); err != nil {
		return
	}
	report.Log("* **GitHub:** Created private repository `%s/%s`.", user, settings.ProjectName)
	report.NextStep("Push the initial commit to GitHub: `git add . && git commit -m 'Initial commit' && git push -u origin main`.")
}

// writeDocumentation renders the final report into the flushed project.
func (w *Wizard) writeDocumentation(settings *project.Settings, targetDir string, report *project.Report) error {
	w.UI.Header("Generating Final Documentation")

	doc, err := docgen.Render(settings.ProjectName, w.Now(), report)
	if err != nil {
		return err
	}
	docPath := filepath.Join(targetDir, filepath.FromSlash(docgen.Path))
	if err := os.MkdirAll(filepath.Dir(docPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		return err
	}

	w.UI.Header("Project Scaffolding Complete!")
	w.UI.Printf("Your new project is ready at: %s\n", targetDir)
	w.UI.Printf("A summary and next steps guide has been created at: %s\n", docPath)
	return nil
}
