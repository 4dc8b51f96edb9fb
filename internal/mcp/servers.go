// Package mcp configures Model Context Protocol server integrations for
// downstream AI coding assistants. It owns the server descriptor table,
// the selection prompt, and the per-tool settings writers.
package mcp

import (
	"strings"

	"github.com/dev-scripter/kickoff/internal/project"
)

// Server describes one MCP integration server as consumed by the AI
// tools' settings files.
type Server struct {
	Command     string            `json:"command"`
	Args        []string          `json:"args"`
	Env         map[string]string `json:"env,omitempty"`
	Description string            `json:"description,omitempty"`
}

// envPlaceholder wraps an environment variable name in the ${env:NAME}
// template form understood by the AI tools.
func envPlaceholder(name string) string {
	return "${env:" + name + "}"
}

// serverOrder fixes the presentation order of the descriptor table.
var serverOrder = []string{
	"github",
	"sequential-thinking",
	"notion",
	"Context7",
	"taskmaster-ai",
	"build-system",
	"filesystem",
	"code-ast",
}

// Servers returns the full descriptor table for the project. The
// build-system entry is rewritten to the single component's build command,
// or to the generated top-level build script for multi-language projects.
func Servers(s *project.Settings) (order []string, table map[string]Server) {
	table = map[string]Server{
		"github": {
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-github"},
			Env:     map[string]string{"GITHUB_PERSONAL_ACCESS_TOKEN": envPlaceholder("GITHUB_PERSONAL_ACCESS_TOKEN")},
		},
		"sequential-thinking": {
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-sequential-thinking"},
		},
		"notion": {
			Command: "npx",
			Args:    []string{"-y", "mcp-server-notion"},
			Env:     map[string]string{"NOTION_API_KEY": envPlaceholder("NOTION_API_KEY")},
		},
		"Context7": {
			Command: "npx",
			Args:    []string{"-y", "@upstash/context7-mcp"},
		},
		"taskmaster-ai": {
			Command: "npx",
			Args:    []string{"-y", "--package=task-master-ai", "task-master-ai"},
			Env: map[string]string{
				"GEMINI_API_KEY":    envPlaceholder("GEMINI_API_KEY"),
				"ANTHROPIC_API_KEY": envPlaceholder("ANTHROPIC_API_KEY"),
			},
		},
		"build-system": {
			Description: "MCP for building/running the project.",
		},
		"filesystem": {
			Command:     "npx",
			Args:        []string{"-y", "mcp-server-filesystem", "--root", "."},
			Description: "MCP for sandboxed file system access.",
		},
		"code-ast": {
			Command:     "echo",
			Args:        []string{"ast-mcp-not-implemented"},
			Description: "MCP for Abstract Syntax Tree code analysis.",
		},
	}

	build := table["build-system"]
	build.Command, build.Args = buildInvocation(s)
	table["build-system"] = build

	return serverOrder, table
}

// buildInvocation returns the command and arguments that build the whole
// project: the component's own build command for single-language projects,
// the generated build script otherwise.
func buildInvocation(s *project.Settings) (string, []string) {
	if s.Multi() {
		return "./build.sh", []string{}
	}
	words := strings.Fields(s.Languages[0].BuildCommand())
	return words[0], words[1:]
}
