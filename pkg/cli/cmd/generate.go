package cmd

import (
	"fmt"

	"github.com/devantler-tech/templ-gen/pkg/cli/flags"
	"github.com/devantler-tech/templ-gen/pkg/di"
	istiogenerator "github.com/devantler-tech/templ-gen/pkg/io/generator/istio"
	"github.com/devantler-tech/templ-gen/pkg/ui/notify"
	"github.com/devantler-tech/templ-gen/pkg/ui/timer"
	"github.com/spf13/cobra"
)

const generateLongDesc = `Generate the Istio templates for a service.

Writes <service>-virtual-service.yaml, <service>-destination-rule.yaml, <service>-gateway.yaml
and <service>-service-entry.yaml into the output directory. Existing files are overwritten.

Examples:
  # Generate templates for the reviews service
  templ-gen generate --service reviews

  # Generate templates in the bookinfo namespace with hosts under example.org
  templ-gen generate -s reviews -n bookinfo -d example.org`

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate Istio templates for a service",
		Long:         generateLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         di.RunEWithRuntime(runtimeContainer, di.WithTimer(HandleGenerateRunE)),
	}

	cmd.Flags().StringP(flags.ServiceFlagName, "s", "", "Name of the service")
	cmd.Flags().StringP(flags.NamespaceFlagName, "n", istiogenerator.DefaultNamespace, "Kubernetes namespace")
	cmd.Flags().StringP(flags.DomainFlagName, "d", "", "Domain the service hosts are qualified with")

	_ = cmd.MarkFlagRequired(flags.ServiceFlagName)

	return cmd
}

// HandleGenerateRunE writes the templates of the requested service.
// Exported for testing purposes.
func HandleGenerateRunE(cmd *cobra.Command, injector di.Injector, tmr timer.Timer) error {
	service, err := cmd.Flags().GetString(flags.ServiceFlagName)
	if err != nil {
		return fmt.Errorf("read --%s: %w", flags.ServiceFlagName, err)
	}

	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	documentMarshaller, err := di.ResolveDocumentMarshaller(injector)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	gen := istiogenerator.NewGeneratorWithMarshaller(config.OutputDir, out, documentMarshaller)

	written, err := gen.Generate(istiogenerator.Service{
		Name:      service,
		Namespace: config.Namespace,
		Domain:    config.Domain,
	})
	if err != nil {
		return fmt.Errorf("generate templates for service %s: %w", service, err)
	}

	notify.SuccessWithTimerf(
		out,
		flags.MaybeTimer(cmd, tmr),
		"generated %d templates for service %s",
		len(written),
		service,
	)

	return nil
}
