package configmanager

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/devantler-tech/templ-gen/pkg/envvar"
	"github.com/devantler-tech/templ-gen/pkg/fsutil"
	configmanagerinterface "github.com/devantler-tech/templ-gen/pkg/io/config-manager"
	"github.com/devantler-tech/templ-gen/pkg/ui/logger"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables read by templ-gen.
	EnvPrefix = "TEMPLGEN"
	// ConfigName is the config file name without extension.
	ConfigName = ".templgen"
	// ConfigType is the config file format.
	ConfigType = "yaml"
)

// ErrEmptyOutputDir is returned when the output directory resolves to an empty path.
var ErrEmptyOutputDir = errors.New("output directory cannot be empty")

// flagKeys maps command-line flag names to configuration keys.
//
//nolint:gochecknoglobals // static lookup table
var flagKeys = map[string]string{
	"output-dir": KeyOutputDir,
	"namespace":  KeyNamespace,
	"domain":     KeyDomain,
}

// envKeys maps configuration keys to the environment variables that set them.
//
//nolint:gochecknoglobals // static lookup table
var envKeys = map[string]string{
	KeyOutputDir: EnvPrefix + "_OUTPUT_DIR",
	KeyNamespace: EnvPrefix + "_NAMESPACE",
	KeyDomain:    EnvPrefix + "_DOMAIN",
}

// ConfigManager implements configuration management for templ-gen.
type ConfigManager struct {
	Viper  *viper.Viper
	Config *Config

	configFile      string
	configLoaded    bool
	configFileFound bool
	flags           *pflag.FlagSet
}

var _ configmanagerinterface.ConfigManager[Config] = (*ConfigManager)(nil)

// NewConfigManager creates a ConfigManager. A non-empty configFile replaces the config file search.
func NewConfigManager(configFile string) *ConfigManager {
	return &ConfigManager{
		Viper:      InitializeViper(configFile),
		Config:     NewConfig(),
		configFile: configFile,
	}
}

// InitializeViper returns a viper instance with defaults, config file lookup and environment
// bindings set up.
func InitializeViper(configFile string) *viper.Viper {
	viperInstance := viper.New()

	viperInstance.SetDefault(KeyOutputDir, DefaultOutputDir)
	viperInstance.SetDefault(KeyNamespace, DefaultNamespace)
	viperInstance.SetDefault(KeyDomain, "")

	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName(ConfigName)
		viperInstance.SetConfigType(ConfigType)
		viperInstance.AddConfigPath(".")
	}

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viperInstance.AutomaticEnv()

	for key, env := range envKeys {
		_ = viperInstance.BindEnv(key, env)
	}

	return viperInstance
}

// BindFlags binds the known flags present in flags to their configuration keys.
// Flags override config only when set on the command line.
// Namespace and domain given on the command line are kept exactly as typed.
func (m *ConfigManager) BindFlags(flags *pflag.FlagSet) error {
	m.flags = flags

	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		err := m.Viper.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

// ConfigFileFound reports whether the last Load read a config file.
func (m *ConfigManager) ConfigFileFound() bool {
	return m.configFileFound
}

// Load loads the configuration from the config file, environment and bound flags.
// Returns the loaded config, either freshly loaded or previously cached.
func (m *ConfigManager) Load(opts configmanagerinterface.LoadOptions) (*Config, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	if !opts.IgnoreConfigFile {
		err := m.readConfig()
		if err != nil {
			return nil, err
		}
	}

	config := NewConfig()

	err := m.Viper.Unmarshal(config, func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			trimmedStringDecodeHook(),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	err = normalize(config)
	if err != nil {
		return nil, err
	}

	m.applyExplicitFlags(config)

	logger.WithComponent("config").
		WithField("outputDir", config.OutputDir).
		WithField("namespace", config.Namespace).
		WithField("domain", config.Domain).
		WithField("file", m.Viper.ConfigFileUsed()).
		Debug("configuration loaded")

	m.Config = config
	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig() error {
	err := m.Viper.ReadInConfig()
	if err != nil {
		// An explicitly requested file has to exist.
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if m.configFile != "" || !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		m.configFileFound = false

		return nil
	}

	m.configFileFound = true

	return nil
}

// normalize expands ${VAR} placeholders and applies the rules the raw values must satisfy.
func normalize(config *Config) error {
	config.OutputDir = envvar.Expand(config.OutputDir)
	config.Namespace = envvar.Expand(config.Namespace)
	config.Domain = envvar.Expand(config.Domain)

	if config.OutputDir == "" {
		return ErrEmptyOutputDir
	}

	outputDir, err := fsutil.ExpandHomePath(config.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to expand output directory: %w", err)
	}

	config.OutputDir = outputDir

	if config.Namespace == "" {
		config.Namespace = DefaultNamespace
	}

	return nil
}

// applyExplicitFlags copies the namespace and domain flags set on the command line into config
// without trimming, expansion or defaulting.
func (m *ConfigManager) applyExplicitFlags(config *Config) {
	if m.flags == nil {
		return
	}

	verbatim := map[string]*string{
		"namespace": &config.Namespace,
		"domain":    &config.Domain,
	}

	for name, field := range verbatim {
		flag := m.flags.Lookup(name)
		if flag != nil && flag.Changed {
			*field = flag.Value.String()
		}
	}
}

// trimmedStringDecodeHook trims surrounding whitespace from string values.
func trimmedStringDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}

		str, ok := data.(string)
		if !ok {
			return data, nil
		}

		return strings.TrimSpace(str), nil
	}
}
