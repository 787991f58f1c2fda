package configmanager

// Configuration keys, as used in the config file.
const (
	KeyOutputDir = "outputDir"
	KeyNamespace = "namespace"
	KeyDomain    = "domain"
)

// Default values.
const (
	DefaultOutputDir = "templ-gen"
	DefaultNamespace = "default"
)

// Config is the templ-gen configuration.
type Config struct {
	// OutputDir is the directory template files are written to, listed from and deleted from.
	OutputDir string `json:"outputDir,omitempty" jsonschema:"default=templ-gen" mapstructure:"outputDir"`
	// Namespace is the default metadata.namespace of generated documents.
	Namespace string `json:"namespace,omitempty" jsonschema:"default=default" mapstructure:"namespace"`
	// Domain is the default domain generated hosts are qualified with. Empty means none.
	Domain string `json:"domain,omitempty" mapstructure:"domain"`
}

// NewConfig returns a Config holding the default values.
func NewConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Namespace: DefaultNamespace,
	}
}
