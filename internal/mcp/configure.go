package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dev-scripter/kickoff/internal/config"
	"github.com/dev-scripter/kickoff/internal/project"
	"github.com/dev-scripter/kickoff/internal/scaffold"
	"github.com/dev-scripter/kickoff/internal/ui"
)

// Configure prompts for the MCP servers to enable and writes one settings
// file per selected AI tool into the stage. Selecting no servers writes
// nothing and records nothing.
func Configure(u *ui.UI, stage *scaffold.Stage, s *project.Settings, report *project.Report) error {
	u.Header("Configuring AI Developer Tools")

	order, table := Servers(s)
	enabled, err := u.SelectMany("Select MCP servers to enable:", order)
	if err != nil {
		return err
	}
	return Apply(stage, s, report, table, enabled)
}

// Apply writes the per-tool settings files for the enabled servers. An
// empty selection writes nothing and records nothing.
func Apply(stage *scaffold.Stage, s *project.Settings, report *project.Report, table map[string]Server, enabled []string) error {
	if len(enabled) == 0 {
		return nil
	}

	report.Log("* **Enabled MCPs:** `%s`.", strings.Join(enabled, ", "))
	report.NextStep("Some MCP servers require Node.js. Run `npm install` in the project root if you encounter `npx` errors.")

	for _, name := range enabled {
		if name == "taskmaster-ai" {
			report.NextStep("IMPORTANT: To complete Taskmaster AI setup, run the following command in your terminal: `npx -y task-master-ai init`")
			report.Log("* **AI Config:** Taskmaster AI configured. Manual initialization required (see next steps).")
		}
	}

	selected := map[string]Server{}
	for _, name := range enabled {
		selected[name] = table[name]
	}

	if s.HasAITool("Gemini") {
		if err := writeGemini(stage, s, selected, report); err != nil {
			return err
		}
	}
	if s.HasAITool("Cursor") {
		if err := writeCursor(stage, s, selected, report); err != nil {
			return err
		}
	}
	if s.HasAITool("Claude") {
		if err := writeClaude(stage, selected, report); err != nil {
			return err
		}
	}
	return nil
}

func writeGemini(stage *scaffold.Stage, s *project.Settings, servers map[string]Server, report *project.Report) error {
	settings := struct {
		ContextFileName string            `json:"contextFileName"`
		MCPServers      map[string]Server `json:"mcpServers"`
	}{
		ContextFileName: "GEMINI.md",
		MCPServers:      servers,
	}
	if err := writeJSON(stage, ".gemini/settings.json", settings); err != nil {
		return err
	}
	if err := stage.WriteFile("GEMINI.md", fmt.Sprintf("# Gemini Context for %s\n", s.ProjectName)); err != nil {
		return err
	}
	report.Log("* **AI Config:** Generated `.gemini/settings.json`.")
	return nil
}

func writeCursor(stage *scaffold.Stage, s *project.Settings, servers map[string]Server, report *project.Report) error {
	resolved := map[string]Server{}
	for name, srv := range servers {
		resolved[name] = ResolveEnv(srv, s.Config)
	}
	settings := struct {
		MCPServers map[string]Server `json:"mcpServers"`
	}{MCPServers: resolved}
	if err := writeJSON(stage, ".cursor/mcp.json", settings); err != nil {
		return err
	}
	report.Log("* **AI Config:** Generated `.cursor/mcp.json`.")
	report.NextStep("Review `.cursor/mcp.json` and replace any placeholder API keys.")
	return nil
}

func writeClaude(stage *scaffold.Stage, servers map[string]Server, report *project.Report) error {
	settings := struct {
		MCPServers map[string]Server `json:"mcpServers"`
	}{MCPServers: servers}
	if err := writeJSON(stage, ".claude/settings.json", settings); err != nil {
		return err
	}
	report.Log("* **AI Config:** Generated `.claude/settings.json`.")
	return nil
}

// ResolveEnv returns a copy of srv with every ${env:NAME} value replaced:
// by the persisted API key when a real value exists, by the human-editable
// YOUR_NAME_HERE placeholder otherwise. Cursor stores literal values
// rather than resolving env templates itself.
func ResolveEnv(srv Server, cfg *config.Config) Server {
	if len(srv.Env) == 0 {
		return srv
	}
	env := make(map[string]string, len(srv.Env))
	for key, val := range srv.Env {
		name, ok := envVarName(val)
		if !ok {
			env[key] = val
			continue
		}
		if literal, ok := cfg.APIKey(name); ok {
			env[key] = literal
		} else {
			env[key] = fmt.Sprintf("YOUR_%s_HERE", name)
		}
	}
	srv.Env = env
	return srv
}

// envVarName extracts NAME from a ${env:NAME} template value.
func envVarName(val string) (string, bool) {
	if !strings.HasPrefix(val, "${env:") || !strings.HasSuffix(val, "}") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(val, "${env:"), "}"), true
}

func writeJSON(stage *scaffold.Stage, path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return stage.WriteFile(path, string(data)+"\n")
}
