package config

// Masonfile represents the structure of the masonfile.yaml configuration.
// Rules are a sequence so that registration order follows document order.
type Masonfile struct {
	Version string    `yaml:"version"`
	Rules   []RuleDTO `yaml:"rules"`
}

// RuleDTO represents one build rule in the configuration.
type RuleDTO struct {
	Target string            `yaml:"target"`
	Deps   []string          `yaml:"deps"`
	Cmd    []string          `yaml:"cmd"`
	Force  bool              `yaml:"force"`
	Env    map[string]string `yaml:"env"`
}
