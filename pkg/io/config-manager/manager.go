package configmanager

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// IgnoreConfigFile skips reading on-disk config files when true (flags, env and defaults only).
	IgnoreConfigFile bool
}

// ConfigManager provides configuration management functionality.
type ConfigManager[T any] interface {
	// Load loads the configuration with the specified options.
	// Returns the loaded config, either freshly loaded or previously cached.
	Load(opts LoadOptions) (*T, error)
}
