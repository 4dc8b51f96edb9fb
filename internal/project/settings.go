// Package project holds the domain records of a scaffolding run: the
// settings gathered from the user, the per-language components, and the
// report accumulated for the final documentation.
package project

import "github.com/dev-scripter/kickoff/internal/config"

// Component is one language's scaffolded subtree. Dir is relative to the
// project root; "." for single-language projects.
type Component struct {
	Language Language
	Dir      string
}

// Settings records every answer of the interactive session. It is created
// once and only grows: Components are appended as scaffolding proceeds.
type Settings struct {
	ProjectName string
	Languages   []Language // selection order, non-empty
	UseDocker   bool
	UseCI       bool
	UseGitHub   bool
	AITools     []string
	Components  []Component

	Config *config.Config
}

// Multi reports whether the project has language components in
// subdirectories rather than a single language at the root.
func (s *Settings) Multi() bool {
	return len(s.Languages) >= 2
}

// AddComponent records a scaffolded component.
func (s *Settings) AddComponent(c Component) {
	s.Components = append(s.Components, c)
}

// HasAITool reports whether the named AI tool was selected.
func (s *Settings) HasAITool(name string) bool {
	for _, t := range s.AITools {
		if t == name {
			return true
		}
	}
	return false
}

// ClaimedDir reports whether dir is already taken by an earlier component.
func (s *Settings) ClaimedDir(dir string) bool {
	for _, c := range s.Components {
		if c.Dir == dir {
			return true
		}
	}
	return false
}
