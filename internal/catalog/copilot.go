package catalog

import "gopkg.in/yaml.v3"

type copilotSettings struct {
	Excluded []string `yaml:"excluded"`
}

type copilotSection struct {
	Copilot copilotSettings `yaml:"copilot"`
}

type copilotConfig struct {
	GitHub copilotSection `yaml:"github"`
}

// CopilotConfig renders .github/copilot/config.yml. The excluded patterns
// keep generated docs and secrets out of Copilot's context.
func CopilotConfig() (string, error) {
	cfg := copilotConfig{
		GitHub: copilotSection{
			Copilot: copilotSettings{
				Excluded: []string{"**/doc/**", "**/.env", "**/GETTING_STARTED.md"},
			},
		},
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return "# Configuration for GitHub Copilot\n" + string(out), nil
}
