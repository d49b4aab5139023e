// Package config manages user-level settings stored at ~/.sitegen/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the npx/npm binaries used for scaffolding and the default log format.
package config
