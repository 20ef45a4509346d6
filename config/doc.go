// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a yaml file and validated using struct tags.
// Load returns the configuration as a value to pass to constructors; there is
// no package-global configuration state.
package config
