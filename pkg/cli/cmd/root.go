package cmd

import (
	"fmt"

	"github.com/devantler-tech/templ-gen/pkg/cli/flags"
	"github.com/devantler-tech/templ-gen/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/templ-gen/pkg/di"
	configmanagerinterface "github.com/devantler-tech/templ-gen/pkg/io/config-manager"
	configmanager "github.com/devantler-tech/templ-gen/pkg/io/config-manager/templgen"
	"github.com/devantler-tech/templ-gen/pkg/ui/logger"
	"github.com/spf13/cobra"
)

const rootLongDesc = `templ-gen generates, lists and deletes Istio networking templates for a service.

For every service it writes a VirtualService, a DestinationRule, a Gateway and a ServiceEntry
as separate YAML files into the output directory (templ-gen by default).

Defaults can be set in .templgen.yaml in the working directory or with TEMPLGEN_* environment
variables. Flags take precedence over both.`

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := di.NewRuntime()

	cmd := &cobra.Command{
		Use:               "templ-gen",
		Short:             "Istio template generator",
		Long:              rootLongDesc,
		RunE:              handleRootRunE,
		PersistentPreRunE: handleRootPersistentPreRunE,
		SilenceUsage:      true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)
	cmd.SetFlagErrorFunc(errorhandler.FlagErrorFunc)

	cmd.PersistentFlags().StringP(
		flags.OutputDirFlagName,
		"o",
		configmanager.DefaultOutputDir,
		"Directory template files are written to and read from",
	)
	cmd.PersistentFlags().String(
		flags.ConfigFlagName,
		"",
		"Path to a config file (default is ./.templgen.yaml)",
	)
	cmd.PersistentFlags().Bool(
		flags.TimingFlagName,
		false,
		"Show per-activity timing output",
	)
	cmd.PersistentFlags().BoolP(
		flags.VerboseFlagName,
		"v",
		false,
		"Log diagnostic details to stderr",
	)

	cmd.AddCommand(NewGenerateCmd(runtimeContainer))
	cmd.AddCommand(NewDeleteCmd(runtimeContainer))
	cmd.AddCommand(NewListCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE handles the root command.
func handleRootRunE(
	cmd *cobra.Command,
	_ []string,
) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}

func handleRootPersistentPreRunE(cmd *cobra.Command, _ []string) error {
	logger.Configure(nil, flags.IsVerbose(cmd))

	return nil
}

// loadConfig resolves the configuration for cmd, with cmd's flags taking precedence.
func loadConfig(cmd *cobra.Command) (*configmanager.Config, error) {
	configFile, err := cmd.Flags().GetString(flags.ConfigFlagName)
	if err != nil {
		return nil, fmt.Errorf("read --%s: %w", flags.ConfigFlagName, err)
	}

	manager := configmanager.NewConfigManager(configFile)

	err = manager.BindFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	config, err := manager.Load(configmanagerinterface.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if !manager.ConfigFileFound() {
		logger.WithComponent("config").
			WithField("file", configmanager.ConfigName+"."+configmanager.ConfigType).
			Debug("no config file found, using defaults, environment and flags")
	}

	return config, nil
}
