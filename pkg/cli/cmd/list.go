package cmd

import (
	"fmt"

	"github.com/devantler-tech/templ-gen/pkg/cli/flags"
	"github.com/devantler-tech/templ-gen/pkg/di"
	"github.com/devantler-tech/templ-gen/pkg/svc/templates"
	"github.com/spf13/cobra"
)

const listLongDesc = `List the template files in the output directory.

With --service only that service's templates are listed. Without it every YAML file in the
output directory is listed.

Examples:
  # List all templates
  templ-gen list

  # List the templates of the reviews service
  templ-gen list --service reviews`

// NewListCmd creates the list command.
func NewListCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List Istio templates",
		Long:         listLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         di.RunEWithRuntime(runtimeContainer, HandleListRunE),
	}

	cmd.Flags().StringP(flags.ServiceFlagName, "s", "", "Name of the service (lists all templates when empty)")
	flags.AddIgnoredGenerateFlags(cmd)

	return cmd
}

// HandleListRunE prints the templates of the requested service, or all templates.
// Exported for testing purposes.
func HandleListRunE(cmd *cobra.Command, _ di.Injector) error {
	service, err := cmd.Flags().GetString(flags.ServiceFlagName)
	if err != nil {
		return fmt.Errorf("read --%s: %w", flags.ServiceFlagName, err)
	}

	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	names, err := templates.NewStore(config.OutputDir, nil).List(service)
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}

	templates.PrintList(cmd.OutOrStdout(), service, names)

	return nil
}
