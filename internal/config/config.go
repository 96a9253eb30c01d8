// Package config resolves create-component configuration from the host
// project's package.json and the user's defaults file.
package config

import "errors"

// BlockKey is the package.json key holding the create-component configuration.
const BlockKey = "frontend-cli"

// ComponentsEnv overrides the components directory of the config block when set.
const ComponentsEnv = "FRONTEND_CLI_COMPONENTS"

var (
	// ErrConfigMissing is returned when the manifest has no frontend-cli block.
	ErrConfigMissing = errors.New("could not parse " + BlockKey + " config")

	// ErrConfigInvalid is returned when the frontend-cli block fails schema validation.
	ErrConfigInvalid = errors.New("invalid " + BlockKey + " config")
)

// Config is the resolved frontend-cli block.
type Config struct {
	// ComponentsRoot is the directory new components are created in.
	ComponentsRoot string `mapstructure:"components"`

	// Templates is an optional go-getter source whose *.tmpl files override
	// the built-in templates.
	Templates string `mapstructure:"templates"`

	// TemplatesRef is appended as ?ref= when fetching Templates.
	TemplatesRef string `mapstructure:"ref"`

	// Hooks are shell commands run inside each new component directory.
	Hooks []string `mapstructure:"hooks"`
}

// HostInfo holds facts about the host project read from its manifest.
type HostInfo struct {
	// ReactRange is the declared react version range, empty if react is not declared.
	ReactRange string
}
