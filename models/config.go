package models

// CommandsConfig represents the "commands" section of config.yaml.
type CommandsConfig struct {
	Auth AuthConfig `json:"auth" mapstructure:"auth"`
}

// AuthConfig lists user IDs that bypass the Discord permission checks.
type AuthConfig struct {
	Developers []string `json:"developers" mapstructure:"developers"`
}
