package cmd

import (
	"errors"
	"fmt"

	"github.com/devantler-tech/templ-gen/pkg/cli/flags"
	"github.com/devantler-tech/templ-gen/pkg/di"
	"github.com/devantler-tech/templ-gen/pkg/svc/templates"
	"github.com/devantler-tech/templ-gen/pkg/ui/notify"
	"github.com/devantler-tech/templ-gen/pkg/ui/timer"
	"github.com/spf13/cobra"
)

const deleteLongDesc = `Delete the Istio templates of a service from the output directory.

Only files named <service>-<kind>.yaml are removed, so templates of services whose name
starts with the same prefix are left alone.

Examples:
  # Delete the templates of the reviews service
  templ-gen delete --service reviews`

// NewDeleteCmd creates the delete command.
func NewDeleteCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete",
		Short:        "Delete the Istio templates of a service",
		Long:         deleteLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         di.RunEWithRuntime(runtimeContainer, di.WithTimer(HandleDeleteRunE)),
	}

	cmd.Flags().StringP(flags.ServiceFlagName, "s", "", "Name of the service")
	flags.AddIgnoredGenerateFlags(cmd)

	_ = cmd.MarkFlagRequired(flags.ServiceFlagName)

	return cmd
}

// HandleDeleteRunE removes the templates of the requested service.
// Finding nothing to delete is reported but is not an error.
// Exported for testing purposes.
func HandleDeleteRunE(cmd *cobra.Command, _ di.Injector, tmr timer.Timer) error {
	service, err := cmd.Flags().GetString(flags.ServiceFlagName)
	if err != nil {
		return fmt.Errorf("read --%s: %w", flags.ServiceFlagName, err)
	}

	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	removed, err := templates.NewStore(config.OutputDir, out).Delete(service)
	if errors.Is(err, templates.ErrNoTemplates) {
		notify.Infof(out, "No template files found for service: %s", service)

		return nil
	}

	if err != nil {
		return fmt.Errorf("delete templates for service %s: %w", service, err)
	}

	notify.SuccessWithTimerf(
		out,
		flags.MaybeTimer(cmd, tmr),
		"deleted %d templates for service %s",
		len(removed),
		service,
	)

	return nil
}
