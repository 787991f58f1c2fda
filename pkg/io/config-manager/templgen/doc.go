// Package configmanager loads the templ-gen configuration with viper.
//
// Values are resolved with the precedence defaults < config file < environment < flags.
// The config file is .templgen.yaml in the working directory, or the file passed with --config.
// Values may reference environment variables as ${NAME} or ${NAME:-default}.
// Environment variables use the TEMPLGEN_ prefix, for example TEMPLGEN_OUTPUT_DIR.
//
// Note: This package shares the "configmanager" package name with its parent directory
// (pkg/io/config-manager). Import with an alias for clarity:
//
//	import templgenconfigmanager "github.com/devantler-tech/templ-gen/pkg/io/config-manager/templgen"
package configmanager
